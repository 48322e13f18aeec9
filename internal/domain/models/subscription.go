package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type PlanType string

const (
	PlanTypeBasic PlanType = "basic"
	PlanTypePro   PlanType = "pro"
	PlanTypeElite PlanType = "elite"
)

// FeatureList хранится в БД как JSON-массив строк
type FeatureList []string

func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(f)
}

func (f *FeatureList) Scan(value interface{}) error {
	if value == nil {
		*f = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("unsupported features type %T", value)
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, f)
}

// SubscriptionPlan представляет тарифный план. Цены в центах.
type SubscriptionPlan struct {
	ID           int64       `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Type         PlanType    `json:"type" db:"type"`
	MonthlyPrice int64       `json:"monthlyPrice" db:"monthly_price"`
	YearlyPrice  int64       `json:"yearlyPrice" db:"yearly_price"`
	Description  string      `json:"description,omitempty" db:"description"`
	Features     FeatureList `json:"features" db:"features"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
}

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"

	SubscriptionIntervalMonthly = "monthly"
	SubscriptionIntervalYearly  = "yearly"
)

// Subscription представляет подписку пользователя на тарифный план
type Subscription struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"userId" db:"user_id"`
	PlanID    int64      `json:"planId" db:"plan_id"`
	Status    string     `json:"status" db:"status"`
	Interval  string     `json:"interval" db:"interval"`
	StartDate time.Time  `json:"startDate" db:"start_date"`
	EndDate   *time.Time `json:"endDate,omitempty" db:"end_date"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// SubscriptionWithPlan объединяет подписку с её тарифным планом
type SubscriptionWithPlan struct {
	Subscription
	Plan SubscriptionPlan `json:"plan"`
}
