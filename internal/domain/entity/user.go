package entity

// TelegramUser identidad confirmada por el backend de autenticación.
// La forma exacta la define Telegram; aquí solo se conservan los campos que la
// aplicación muestra. ID y AuthDate llegan como los entrega el proveedor.
type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	AuthDate  int64  `json:"auth_date,omitempty"`
}
