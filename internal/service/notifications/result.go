package notifications

// Channel канал доставки уведомления
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Transition переход жизненного цикла, о котором уведомляем
type Transition string

const (
	TransitionConfirmed Transition = "confirmada"
	TransitionDenied    Transition = "denegada"
)

// Result результат попытки отправить уведомление.
// Уведомления не влияют на уже совершенный переход статуса:
// вызывающая сторона логирует результат и отдает его в ответе,
// но никогда не откатывает изменение. Поэтому Notify возвращает
// Result, а не error - игнорировать его является осознанным выбором.
type Result struct {
	Sent      bool
	Channel   Channel
	Recipient string
	Err       error
}

// Failed возвращает true, если отправка не удалась
func (r Result) Failed() bool {
	return !r.Sent
}

// ErrorMessage возвращает текст ошибки или пустую строку
func (r Result) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
