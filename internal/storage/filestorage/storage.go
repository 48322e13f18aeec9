package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStorage интерфейс для работы с файловым хранилищем
type FileStorage interface {
	SaveBytes(ctx context.Context, data []byte, ext string) (fileName string, err error)
	Delete(ctx context.Context, fileName string) error
	GetFullPath(fileName string) string
	URL(fileName string) string
	BaseURL() string
	GetBaseDir() string
}

// LocalFileStorage реализация для локальной файловой системы.
// Все файлы лежат в одном плоском каталоге.
type LocalFileStorage struct {
	baseDir string // Базовый каталог для хранения (например: "./uploads")
	baseURL string // Базовый URL для доступа к файлам (например: "/uploads")
}

func NewLocalFileStorage(baseDir, baseURL string) (*LocalFileStorage, error) {
	// Создаем директорию, если она не существует
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: baseURL,
	}, nil
}

// SaveBytes пишет обработанные байты в новый файл со случайным именем.
// Возвращает имя файла внутри каталога хранилища.
func (s *LocalFileStorage) SaveBytes(ctx context.Context, data []byte, ext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fileName := uuid.New().String() + ext
	filePath := filepath.Join(s.baseDir, fileName)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fileName, nil
}

// Delete удаляет файл из хранилища
func (s *LocalFileStorage) Delete(ctx context.Context, fileName string) error {
	fullPath := filepath.Join(s.baseDir, fileName)
	return os.Remove(fullPath)
}

// GetFullPath возвращает полный путь к файлу на диске
func (s *LocalFileStorage) GetFullPath(fileName string) string {
	return filepath.Join(s.baseDir, fileName)
}

// URL возвращает публичный URL файла
func (s *LocalFileStorage) URL(fileName string) string {
	return s.baseURL + "/" + fileName
}

// BaseURL возвращает базовый URL для доступа к файлам
func (s *LocalFileStorage) BaseURL() string {
	return s.baseURL
}

func (s *LocalFileStorage) GetBaseDir() string {
	return s.baseDir
}
