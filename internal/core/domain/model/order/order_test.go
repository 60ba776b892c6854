package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func mustItem(t *testing.T, productCode, barcode string, qty int) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), productCode, barcode, qty)
	require.NoError(t, err)
	return item
}

func newPackingOrder(t *testing.T, method order.DeliveryMethod, payment order.PaymentMethod, items ...*order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "PED-1001", method, payment, mustMoney(t, 5000000), items)
	require.NoError(t, err)
	require.NoError(t, o.BeginPacking())
	return o
}

func scanAll(t *testing.T, o *order.Order, code string, times int) order.ScanResult {
	t.Helper()
	var last order.ScanResult
	var err error
	for i := 0; i < times; i++ {
		last, err = o.RecordScan(code, kernel.NewUUID(), time.Now())
		require.NoError(t, err)
	}
	return last
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_order_in_created_status", func(t *testing.T) {
		item := mustItem(t, "SHOT000", "7701234567890", 1)
		o, err := order.NewOrder(kernel.NewUUID(), "PED-1001", order.LocalMessenger,
			order.CashOnDelivery, mustMoney(t, 5000000), []*order.Item{item})

		require.NoError(t, err)
		assert.Equal(t, order.StatusCreated, o.Status())
		assert.Equal(t, 1, o.Version())
		assert.True(t, o.IsCOD())
		assert.Nil(t, o.CarrierID())
		assert.Nil(t, o.MessengerID())
		assert.Empty(t, o.Checklist())
	})

	t.Run("requires_items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "PED-1001", order.LocalMessenger,
			order.Prepaid, mustMoney(t, 100), nil)

		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("rejects_cod_with_warehouse_pickup", func(t *testing.T) {
		item := mustItem(t, "SHOT000", "7701234567890", 1)
		_, err := order.NewOrder(kernel.NewUUID(), "PED-1001", order.WarehousePickup,
			order.CashOnDelivery, mustMoney(t, 5000000), []*order.Item{item})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires_number", func(t *testing.T) {
		item := mustItem(t, "SHOT000", "", 1)
		_, err := order.NewOrder(kernel.NewUUID(), "", order.LocalMessenger,
			order.Prepaid, mustMoney(t, 100), []*order.Item{item})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder_AssigneeConsistency(t *testing.T) {
	item := mustItem(t, "SHOT000", "7701234567890", 1)
	carrierID := kernel.NewUUID()
	messengerID := kernel.NewUUID()

	t.Run("rejects_both_carrier_and_messenger", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "PED-1", order.StatusOutForDelivery,
			order.CarrierShipment, order.Prepaid, mustMoney(t, 100),
			&carrierID, &messengerID, 3, []*order.Item{item}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_messenger_on_carrier_order", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "PED-1", order.StatusOutForDelivery,
			order.CarrierShipment, order.Prepaid, mustMoney(t, 100),
			nil, &messengerID, 3, []*order.Item{item}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_BuildChecklist(t *testing.T) {
	t.Run("one_line_per_item", func(t *testing.T) {
		o := newPackingOrder(t, order.LocalMessenger, order.Prepaid,
			mustItem(t, "SHOT000", "7701111111111", 1),
			mustItem(t, "POP001", "7702222222222", 2),
		)

		require.Len(t, o.Checklist(), 2)
		assert.Equal(t, 0, o.Checklist()[0].VerifiedCount())
		assert.False(t, o.Checklist()[0].IsVerified())
	})

	t.Run("idempotent_on_retry", func(t *testing.T) {
		o := newPackingOrder(t, order.LocalMessenger, order.Prepaid,
			mustItem(t, "SHOT000", "7701111111111", 2))
		scanAll(t, o, "7701111111111", 1)

		require.NoError(t, o.BuildChecklist())
		require.Len(t, o.Checklist(), 1)
		assert.Equal(t, 1, o.Checklist()[0].VerifiedCount())
	})

	t.Run("rejected_before_packing", func(t *testing.T) {
		item := mustItem(t, "SHOT000", "7701111111111", 1)
		o, err := order.NewOrder(kernel.NewUUID(), "PED-1", order.LocalMessenger,
			order.Prepaid, mustMoney(t, 100), []*order.Item{item})
		require.NoError(t, err)

		require.ErrorIs(t, o.BuildChecklist(), errs.ErrPreconditionNotMet)
	})
}

func TestOrder_RecordScan(t *testing.T) {
	t.Run("two_items_complete_on_last_scan", func(t *testing.T) {
		// Order with required quantities 1 and 2: three scans total, the
		// last one flips AllVerified and auto-advances the order.
		o := newPackingOrder(t, order.LocalMessenger, order.Prepaid,
			mustItem(t, "SHOT000", "7701111111111", 1),
			mustItem(t, "POP001", "7702222222222", 2),
		)

		res, err := o.RecordScan("7701111111111", kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		assert.True(t, res.LineCompleted)
		assert.False(t, res.AllVerified)

		res, err = o.RecordScan("7702222222222", kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		assert.False(t, res.LineCompleted)
		assert.False(t, res.AllVerified)
		assert.Equal(t, order.StatusReadyToPack, o.Status())

		res, err = o.RecordScan("7702222222222", kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		assert.True(t, res.LineCompleted)
		assert.True(t, res.AllVerified)
		assert.Equal(t, order.StatusReadyForDelivery, o.Status())
	})

	t.Run("unknown_barcode_changes_nothing", func(t *testing.T) {
		o := newPackingOrder(t, order.LocalMessenger, order.Prepaid,
			mustItem(t, "SHOT000", "7701111111111", 1))

		_, err := o.RecordScan("9999999999999", kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrUnknownBarcode)
		assert.Equal(t, 0, o.Checklist()[0].VerifiedCount())
		assert.Equal(t, order.StatusReadyToPack, o.Status())
	})

	t.Run("scan_beyond_required_fails_with_already_verified", func(t *testing.T) {
		o := newPackingOrder(t, order.WarehousePickup, order.Prepaid,
			mustItem(t, "SHOT000", "7701111111111", 2),
			mustItem(t, "POP001", "7702222222222", 1),
		)
		scanAll(t, o, "7701111111111", 2)

		_, err := o.RecordScan("7701111111111", kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrAlreadyVerified)
		assert.Equal(t, 2, o.Checklist()[0].VerifiedCount())
	})

	t.Run("item_without_barcode_matches_product_code", func(t *testing.T) {
		o := newPackingOrder(t, order.LocalMessenger, order.Prepaid,
			mustItem(t, "MANUAL01", "", 1))

		res, err := o.RecordScan("MANUAL01", kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		assert.True(t, res.AllVerified)
	})

	t.Run("scan_events_numbered_per_item", func(t *testing.T) {
		o := newPackingOrder(t, order.LocalMessenger, order.Prepaid,
			mustItem(t, "POP001", "7702222222222", 3))

		for i := 1; i <= 3; i++ {
			res, err := o.RecordScan("7702222222222", kernel.NewUUID(), time.Now())
			require.NoError(t, err)
			assert.Equal(t, i, res.Event.ScanNumber())
		}
	})

	t.Run("rejected_when_not_packing", func(t *testing.T) {
		o := newPackingOrder(t, order.LocalMessenger, order.Prepaid,
			mustItem(t, "SHOT000", "7701111111111", 1))
		scanAll(t, o, "7701111111111", 1)

		_, err := o.RecordScan("7701111111111", kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)
	})
}

func TestOrder_AssignCarrier(t *testing.T) {
	readyCarrierOrder := func(t *testing.T) *order.Order {
		o := newPackingOrder(t, order.CarrierShipment, order.Prepaid,
			mustItem(t, "SHOT000", "7701111111111", 1))
		scanAll(t, o, "7701111111111", 1)
		return o
	}

	t.Run("binds_carrier_and_dispatches", func(t *testing.T) {
		o := readyCarrierOrder(t)
		carrierID := kernel.NewUUID()

		require.NoError(t, o.AssignCarrier(carrierID))
		assert.Equal(t, order.StatusOutForDelivery, o.Status())
		require.NotNil(t, o.CarrierID())
		assert.True(t, o.CarrierID().IsEqual(carrierID))
		assert.Nil(t, o.MessengerID())
	})

	t.Run("fails_when_not_ready", func(t *testing.T) {
		o := newPackingOrder(t, order.CarrierShipment, order.Prepaid,
			mustItem(t, "SHOT000", "7701111111111", 1))

		err := o.AssignCarrier(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrOrderNotReady)
	})

	t.Run("fails_on_method_mismatch", func(t *testing.T) {
		o := newPackingOrder(t, order.LocalMessenger, order.Prepaid,
			mustItem(t, "SHOT000", "7701111111111", 1))
		scanAll(t, o, "7701111111111", 1)

		err := o.AssignCarrier(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrMethodMismatch)
	})

	t.Run("messenger_assignment_mirrors_the_rules", func(t *testing.T) {
		o := newPackingOrder(t, order.LocalMessenger, order.CashOnDelivery,
			mustItem(t, "SHOT000", "7701111111111", 1))
		scanAll(t, o, "7701111111111", 1)
		messengerID := kernel.NewUUID()

		require.NoError(t, o.AssignMessenger(messengerID))
		assert.Equal(t, order.StatusOutForDelivery, o.Status())
		require.NotNil(t, o.MessengerID())
		assert.True(t, o.MessengerID().IsEqual(messengerID))

		err := o.AssignMessenger(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrOrderNotReady)
	})
}

func TestOrder_Reassign(t *testing.T) {
	outForDeliveryOrder := func(t *testing.T) *order.Order {
		o := newPackingOrder(t, order.LocalMessenger, order.CashOnDelivery,
			mustItem(t, "SHOT000", "7701111111111", 1))
		scanAll(t, o, "7701111111111", 1)
		require.NoError(t, o.AssignMessenger(kernel.NewUUID()))
		return o
	}

	t.Run("replaces_messenger_without_reverting_status", func(t *testing.T) {
		o := outForDeliveryOrder(t)
		newMessenger := kernel.NewUUID()

		require.NoError(t, o.ReassignMessenger(newMessenger))
		assert.Equal(t, order.StatusOutForDelivery, o.Status())
		assert.True(t, o.MessengerID().IsEqual(newMessenger))
	})

	t.Run("illegal_after_delivery", func(t *testing.T) {
		o := outForDeliveryOrder(t)
		require.NoError(t, o.DeliverToCustomer())

		err := o.ReassignMessenger(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)
	})
}

func TestOrder_Deliver(t *testing.T) {
	t.Run("carrier_shipment_closes_at_carrier", func(t *testing.T) {
		o := newPackingOrder(t, order.CarrierShipment, order.Prepaid,
			mustItem(t, "SHOT000", "7701111111111", 1))
		scanAll(t, o, "7701111111111", 1)
		require.NoError(t, o.AssignCarrier(kernel.NewUUID()))

		require.NoError(t, o.DeliverToCarrier())
		assert.Equal(t, order.StatusDeliveredToCarrier, o.Status())
	})

	t.Run("pickup_order_skips_assignment", func(t *testing.T) {
		o := newPackingOrder(t, order.WarehousePickup, order.Prepaid,
			mustItem(t, "SHOT000", "7701111111111", 1))
		scanAll(t, o, "7701111111111", 1)

		require.NoError(t, o.DeliverToCustomer())
		assert.Equal(t, order.StatusDeliveredToCustomer, o.Status())
	})

	t.Run("messenger_delivery_requires_binding", func(t *testing.T) {
		o := newPackingOrder(t, order.LocalMessenger, order.Prepaid,
			mustItem(t, "SHOT000", "7701111111111", 1))
		scanAll(t, o, "7701111111111", 1)

		err := o.DeliverToCustomer()
		require.ErrorIs(t, err, errs.ErrPreconditionNotMet)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("mid_packing_keeps_scan_history", func(t *testing.T) {
		// 2 of 3 lines verified, then cancelled: counts stay as audit data.
		o := newPackingOrder(t, order.LocalMessenger, order.Prepaid,
			mustItem(t, "A", "7701111111111", 1),
			mustItem(t, "B", "7702222222222", 1),
			mustItem(t, "C", "7703333333333", 1),
		)
		scanAll(t, o, "7701111111111", 1)
		scanAll(t, o, "7702222222222", 1)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, 1, o.Checklist()[0].VerifiedCount())
		assert.Equal(t, 1, o.Checklist()[1].VerifiedCount())
		assert.Equal(t, 0, o.Checklist()[2].VerifiedCount())
	})

	t.Run("releases_channel_binding", func(t *testing.T) {
		o := newPackingOrder(t, order.LocalMessenger, order.Prepaid,
			mustItem(t, "A", "7701111111111", 1))
		scanAll(t, o, "7701111111111", 1)
		require.NoError(t, o.AssignMessenger(kernel.NewUUID()))

		require.NoError(t, o.Cancel())
		assert.Nil(t, o.MessengerID())
	})

	t.Run("illegal_on_delivered_order", func(t *testing.T) {
		o := newPackingOrder(t, order.WarehousePickup, order.Prepaid,
			mustItem(t, "A", "7701111111111", 1))
		scanAll(t, o, "7701111111111", 1)
		require.NoError(t, o.DeliverToCustomer())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
	})
}
