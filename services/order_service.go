package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/repository"
	"gorm.io/gorm"
)

// Precondition failures callers can match on.
var (
	ErrStudentNotFound   = errors.New("student profile not found")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrSoldOut           = errors.New("sold out")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotPending   = errors.New("order is not pending")
	ErrOrderNotPaid      = errors.New("order not yet paid")
	ErrBadPaymentMethod  = errors.New("unknown payment method")
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	MenuRepo    *repository.MenuRepository
	StudentRepo *repository.StudentRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repository.NewOrderRepository(db),
		MenuRepo:    repository.NewMenuRepository(db),
		StudentRepo: repository.NewStudentRepository(db),
	}
}

type PlaceOrderRes struct {
	OrderID  uint               `json:"orderId"`
	DishName string             `json:"dishName"`
	Price    float64            `json:"price"`
	Status   entity.OrderStatus `json:"status"`
}

// Place creates a pending order for one menu item, takes one unit off its
// availability and debits the student's balance by its price. The three
// writes commit together or not at all; the guarded updates re-check stock
// and balance inside the transaction, so two racing orders for the last
// unit (or the last funds) cannot both succeed.
func (s *OrderService) Place(studentUserID, menuItemID uint) (*PlaceOrderRes, error) {
	student, err := s.StudentRepo.FindByUserID(studentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	item, err := s.MenuRepo.Get(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	// Cheap pre-checks before any write begins.
	if item.AvailableCount <= 0 {
		return nil, ErrSoldOut
	}
	if student.Balance < item.Price {
		return nil, ErrInsufficientFunds
	}

	var out PlaceOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			StudentID:  student.ID,
			MenuItemID: item.ID,
			Status:     entity.OrderPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		affected, err := s.MenuRepo.DecrementAvailability(tx, item.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrSoldOut
		}

		affected, err = s.StudentRepo.DebitBalance(tx, student.ID, item.Price)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInsufficientFunds
		}

		out = PlaceOrderRes{
			OrderID:  order.ID,
			DishName: item.DishName,
			Price:    item.Price,
			Status:   order.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type ConfirmPaymentRes struct {
	OrderID   uint               `json:"orderId"`
	Amount    float64            `json:"amount"`
	Reference string             `json:"reference"`
	Status    entity.OrderStatus `json:"status"`
}

// ConfirmPayment records a payment for a pending order and advances it to
// paid, in one transaction. The balance was already debited at placement;
// the payment row is the bookkeeping record the issue step requires.
func (s *OrderService) ConfirmPayment(orderID uint, method entity.PaymentMethod) (*ConfirmPaymentRes, error) {
	if !method.Valid() {
		return nil, ErrBadPaymentMethod
	}

	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.Status != entity.OrderPending {
		return nil, ErrOrderNotPending
	}

	item, err := s.MenuRepo.Get(order.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	var out ConfirmPaymentRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, order.ID, entity.OrderPending, entity.OrderPaid)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderNotPending
		}

		p := entity.Payment{
			OrderID:   order.ID,
			Amount:    item.Price,
			Method:    method,
			Status:    "completed",
			Reference: uuid.NewString(),
			PaidAt:    time.Now(),
		}
		if err := s.Repo.CreatePayment(tx, &p); err != nil {
			return err
		}

		out = ConfirmPaymentRes{
			OrderID:   order.ID,
			Amount:    p.Amount,
			Reference: p.Reference,
			Status:    entity.OrderPaid,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Issue hands a paid order to the student. Only paid orders can be issued;
// no stock or balance side effects happen here, those were applied at
// placement.
func (s *OrderService) Issue(orderID uint) error {
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	affected, err := s.Repo.UpdateStatusGuard(s.DB, orderID, entity.OrderPaid, entity.OrderIssued)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotPaid
	}
	return nil
}

func (s *OrderService) ListForStudent(studentUserID uint, limit int) ([]repository.OrderSummary, error) {
	student, err := s.StudentRepo.FindByUserID(studentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return s.Repo.ListForStudent(student.ID, limit)
}

type DayOrder struct {
	ID       uint               `json:"id"`
	Status   entity.OrderStatus `json:"status"`
	DishName string             `json:"dishName"`
	MealType entity.MealType    `json:"mealType"`
	Price    float64            `json:"price"`
}

func (s *OrderService) ListForDay(day time.Time) ([]DayOrder, error) {
	orders, err := s.Repo.ListForDay(day)
	if err != nil {
		return nil, err
	}
	out := make([]DayOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, DayOrder{
			ID:       o.ID,
			Status:   o.Status,
			DishName: o.MenuItem.DishName,
			MealType: o.MenuItem.MealType,
			Price:    o.MenuItem.Price,
		})
	}
	return out, nil
}
