package services

import (
	"testing"

	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderFlowState struct {
	orders    int64
	available int
	balance   float64
}

func snapshot(t *testing.T, db *gorm.DB, studentID, itemID uint) orderFlowState {
	t.Helper()
	var st orderFlowState
	require.NoError(t, db.Model(&entity.Order{}).Count(&st.orders).Error)

	var item entity.MenuItem
	require.NoError(t, db.First(&item, itemID).Error)
	st.available = item.AvailableCount

	var student entity.Student
	require.NoError(t, db.First(&student, studentID).Error)
	st.balance = student.Balance
	return st
}

func TestPlaceOrderSuccess(t *testing.T) {
	db := newTestDB(t)
	user, student := createStudent(t, db, 1000)
	item := createMenuItem(t, db, 250, 50)
	svc := NewOrderService(db)

	out, err := svc.Place(user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chicken noodle soup", out.DishName)
	assert.Equal(t, entity.OrderPending, out.Status)

	st := snapshot(t, db, student.ID, item.ID)
	assert.Equal(t, int64(1), st.orders)
	assert.Equal(t, 49, st.available)
	assert.Equal(t, 750.0, st.balance)
}

func TestPlaceOrderMenuItemNotFound(t *testing.T) {
	db := newTestDB(t)
	user, _ := createStudent(t, db, 1000)
	svc := NewOrderService(db)

	_, err := svc.Place(user.ID, 999)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestPlaceOrderNoStudentProfile(t *testing.T) {
	db := newTestDB(t)
	user := entity.User{Username: "cook", Password: "x", Role: entity.RoleCook}
	require.NoError(t, db.Create(&user).Error)
	item := createMenuItem(t, db, 100, 10)
	svc := NewOrderService(db)

	_, err := svc.Place(user.ID, item.ID)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestPlaceOrderSoldOutChangesNothing(t *testing.T) {
	db := newTestDB(t)
	user, student := createStudent(t, db, 1000)
	item := createMenuItem(t, db, 250, 0)
	svc := NewOrderService(db)

	before := snapshot(t, db, student.ID, item.ID)
	require.Equal(t, 0, before.available)

	_, err := svc.Place(user.ID, item.ID)
	assert.ErrorIs(t, err, ErrSoldOut)
	assert.Equal(t, before, snapshot(t, db, student.ID, item.ID))
}

// Zero availability must survive the insert as-is; a column default that
// rewrites it would make a sold-out dish orderable.
func TestMenuItemZeroAvailabilityPersists(t *testing.T) {
	db := newTestDB(t)
	item := createMenuItem(t, db, 250, 0)
	svc := NewOrderService(db)

	stored, err := svc.MenuRepo.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.AvailableCount)
}

func TestPlaceOrderInsufficientFundsChangesNothing(t *testing.T) {
	db := newTestDB(t)
	user, student := createStudent(t, db, 100)
	item := createMenuItem(t, db, 250, 50)
	svc := NewOrderService(db)

	before := snapshot(t, db, student.ID, item.ID)
	_, err := svc.Place(user.ID, item.ID)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, before, snapshot(t, db, student.ID, item.ID))
}

// Exact-balance, last-unit order drains both to zero; the next attempt
// must fail sold out and leave nothing changed.
func TestPlaceOrderLastUnitExactBalance(t *testing.T) {
	db := newTestDB(t)
	user, student := createStudent(t, db, 200)
	item := createMenuItem(t, db, 200, 1)
	svc := NewOrderService(db)

	_, err := svc.Place(user.ID, item.ID)
	require.NoError(t, err)

	st := snapshot(t, db, student.ID, item.ID)
	assert.Equal(t, 0, st.available)
	assert.Equal(t, 0.0, st.balance)

	_, err = svc.Place(user.ID, item.ID)
	assert.ErrorIs(t, err, ErrSoldOut)
	assert.Equal(t, st, snapshot(t, db, student.ID, item.ID))
}

// The guarded updates are the serialization point. Replay the placement
// transaction against state changed after the pre-checks, the way a racing
// request would, and verify the whole effect rolls back: no order row, no
// decrement, no debit.
func TestPlaceOrderGuardRollsBackAtomically(t *testing.T) {
	db := newTestDB(t)
	_, student := createStudent(t, db, 100)
	item := createMenuItem(t, db, 250, 1)
	svc := NewOrderService(db)

	before := snapshot(t, db, student.ID, item.ID)

	// Stock guard passes, balance guard fails: the already-created order
	// and the decrement must both be rolled back.
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := svc.Repo.CreateOrder(tx, &entity.Order{
			StudentID: student.ID, MenuItemID: item.ID, Status: entity.OrderPending,
		}); err != nil {
			return err
		}
		affected, err := svc.MenuRepo.DecrementAvailability(tx, item.ID)
		if err != nil {
			return err
		}
		require.Equal(t, int64(1), affected)

		affected, err = svc.StudentRepo.DebitBalance(tx, student.ID, item.Price)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInsufficientFunds
		}
		return nil
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, before, snapshot(t, db, student.ID, item.ID))
}

func TestConfirmPayment(t *testing.T) {
	db := newTestDB(t)
	user, _ := createStudent(t, db, 1000)
	item := createMenuItem(t, db, 250, 50)
	svc := NewOrderService(db)

	placed, err := svc.Place(user.ID, item.ID)
	require.NoError(t, err)

	out, err := svc.ConfirmPayment(placed.OrderID, entity.PayCard)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPaid, out.Status)
	assert.Equal(t, 250.0, out.Amount)
	assert.NotEmpty(t, out.Reference)

	var payment entity.Payment
	require.NoError(t, db.Where("order_id = ?", placed.OrderID).First(&payment).Error)
	assert.Equal(t, entity.PayCard, payment.Method)

	// Second confirmation must fail: the order is no longer pending.
	_, err = svc.ConfirmPayment(placed.OrderID, entity.PayCard)
	assert.ErrorIs(t, err, ErrOrderNotPending)

	var cnt int64
	require.NoError(t, db.Model(&entity.Payment{}).Where("order_id = ?", placed.OrderID).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func TestConfirmPaymentValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.ConfirmPayment(1, "crypto")
	assert.ErrorIs(t, err, ErrBadPaymentMethod)

	_, err = svc.ConfirmPayment(999, entity.PayCash)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestConfirmPaymentMenuItemGone(t *testing.T) {
	db := newTestDB(t)
	user, _ := createStudent(t, db, 1000)
	item := createMenuItem(t, db, 250, 50)
	svc := NewOrderService(db)

	placed, err := svc.Place(user.ID, item.ID)
	require.NoError(t, err)

	// Menu rotation can remove a dish between placement and payment.
	require.NoError(t, db.Delete(&entity.MenuItem{}, item.ID).Error)

	_, err = svc.ConfirmPayment(placed.OrderID, entity.PayCard)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)

	// The order stays pending, nothing was written.
	order, err := svc.Repo.GetOrder(placed.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)

	var cnt int64
	require.NoError(t, db.Model(&entity.Payment{}).Where("order_id = ?", placed.OrderID).Count(&cnt).Error)
	assert.Equal(t, int64(0), cnt)
}

func TestIssueOrder(t *testing.T) {
	db := newTestDB(t)
	user, _ := createStudent(t, db, 1000)
	item := createMenuItem(t, db, 250, 50)
	svc := NewOrderService(db)

	placed, err := svc.Place(user.ID, item.ID)
	require.NoError(t, err)

	// Pending orders cannot be issued and stay pending.
	err = svc.Issue(placed.OrderID)
	assert.ErrorIs(t, err, ErrOrderNotPaid)

	order, err := svc.Repo.GetOrder(placed.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)

	_, err = svc.ConfirmPayment(placed.OrderID, entity.PayCash)
	require.NoError(t, err)

	require.NoError(t, svc.Issue(placed.OrderID))
	order, err = svc.Repo.GetOrder(placed.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderIssued, order.Status)

	// Issued is terminal; a repeat issue fails.
	err = svc.Issue(placed.OrderID)
	assert.ErrorIs(t, err, ErrOrderNotPaid)
}

func TestIssueOrderNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	err := svc.Issue(12345)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListForStudent(t *testing.T) {
	db := newTestDB(t)
	user, _ := createStudent(t, db, 1000)
	item := createMenuItem(t, db, 100, 50)
	svc := NewOrderService(db)

	for i := 0; i < 3; i++ {
		_, err := svc.Place(user.ID, item.ID)
		require.NoError(t, err)
	}

	items, err := svc.ListForStudent(user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, entity.OrderPending, items[0].Status)
}
