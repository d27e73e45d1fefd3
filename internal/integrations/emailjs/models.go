package emailjs

// TemplateParams параметры письма, подставляемые в шаблон EmailJS.
// Имена полей совпадают с плейсхолдерами шаблона.
type TemplateParams struct {
	ToName  string `json:"to_name"`
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	ReplyTo string `json:"reply_to"`
}

// sendRequest тело запроса EmailJS REST API
type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"accessToken,omitempty"`
	TemplateParams TemplateParams `json:"template_params"`
}
