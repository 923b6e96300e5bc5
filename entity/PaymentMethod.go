package entity

type PaymentMethod string

const (
	PayCard PaymentMethod = "card"
	PayCash PaymentMethod = "cash"
)

func (p PaymentMethod) Valid() bool {
	return p == PayCard || p == PayCash
}
