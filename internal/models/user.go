package models

// User представляет зарегистрированного пользователя
type User struct {
	Email        string `json:"email"`         // уникальный email, ключ записи
	PasswordHash string `json:"password_hash"` // дайджест пароля (bcrypt или legacy werkzeug)
	ID           int64  `json:"id"`            // монотонный идентификатор, начиная с 1
}

// License представляет лицензию (product key) и ее владельца
type License struct {
	Key        string `json:"key"`   // product key, он же rec_token
	OwnerEmail string `json:"email"` // email владельца, может не соответствовать ни одному User
}
