package api

// LoginRequest представляет запрос на аутентификацию по паролю.
// Идентификатор пользователя принимается в одном из полей email, username или user
type LoginRequest struct {
	Email    string `json:"email,omitempty"`    // email пользователя
	Username string `json:"username,omitempty"` // альтернативное имя поля email
	User     string `json:"user,omitempty"`     // альтернативное имя поля email
	Password string `json:"password"`           // пароль в открытом виде
}

// Identity returns the first non-empty of Email, Username and User
func (r LoginRequest) Identity() string {
	switch {
	case r.Email != "":
		return r.Email
	case r.Username != "":
		return r.Username
	default:
		return r.User
	}
}

// ProductKeyRequest представляет запрос на обмен ключа продукта на токены
type ProductKeyRequest struct {
	ProductKey string `json:"product_key,omitempty"` // ключ продукта
	Key        string `json:"key,omitempty"`         // альтернативное имя поля product_key
}

// ProductKeyValue returns ProductKey, falling back to Key
func (r ProductKeyRequest) ProductKeyValue() string {
	if r.ProductKey != "" {
		return r.ProductKey
	}
	return r.Key
}

// ValidateRequest представляет запрос проверки entitlement токена
type ValidateRequest struct {
	RecToken string `json:"rec_token,omitempty"` // явный entitlement токен
}

// TokenResponse представляет ответ с токенами доступа
type TokenResponse struct {
	AccessToken  string `json:"access_token"`  // JWT access token
	RefreshToken string `json:"refresh_token"` // refresh token
	RecToken     string `json:"rec_token"`     // entitlement токен, может быть пустым
}

// RefreshResponse представляет ответ на обновление access token
type RefreshResponse struct {
	AccessToken string `json:"access_token"` // новый JWT access token
}

// EntitlementResponse представляет ответ проверки entitlement
type EntitlementResponse struct {
	RecToken string `json:"rec_token"` // entitlement токен, пустая строка если не найден
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
