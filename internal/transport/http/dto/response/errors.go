package response

// Тексты сообщений повторяют контракт клиента дословно
const (
	MsgInvalidRequestFormat = "Invalid request format"
	MsgInvalidCredentials   = "Incorrect username or password"
	MsgUsernameExists       = "Username already exists"
	MsgEmailExists          = "Email already exists"
	MsgNotAuthenticated     = "Not authenticated"
	MsgUnauthorized         = "Unauthorized"
	MsgLoggedOut            = "Logged out successfully"
	MsgCategoryNotFound     = "Category not found"
	MsgPhotoNotFound        = "Photo not found"
	MsgNoPhotoUploaded      = "No photo uploaded"
	MsgInternalError        = "Internal server error"
	MsgMessageSent          = "Message sent successfully"
)
