// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Version backs the optimistic concurrency check in Update.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number         string     `gorm:"uniqueIndex"`
	Status         string     `gorm:"index"`
	DeliveryMethod string     `gorm:"column:delivery_method"`
	PaymentMethod  string     `gorm:"column:payment_method"`
	TotalAmount    int64      `gorm:"column:total_amount"`
	CarrierID      *uuid.UUID `gorm:"type:uuid;index"`
	MessengerID    *uuid.UUID `gorm:"type:uuid;index"`
	Version        int

	Items     []ItemDTO          `gorm:"foreignKey:OrderID;references:ID"`
	Checklist []ChecklistLineDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one expected line item of an order. Rows are immutable
// once the order is registered.
type ItemDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	ProductCode      string    `gorm:"column:product_code"`
	Barcode          string
	RequiredQuantity int `gorm:"column:required_quantity"`
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// ChecklistLineDTO represents one verification counter of the packing
// checklist, keyed by order and item.
type ChecklistLineDTO struct {
	OrderID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequiredQuantity int       `gorm:"column:required_quantity"`
	VerifiedCount    int       `gorm:"column:verified_count"`
}

// TableName specifies the database table name for checklist lines.
func (ChecklistLineDTO) TableName() string {
	return "checklist_lines"
}

// ScanEventDTO represents one accepted scan in the append-only audit log.
// ScanNumber is the per-line ordinal, making the triple key unique.
type ScanEventDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ScanNumber int       `gorm:"column:scan_number;primaryKey"`
	Barcode    string
	ScannedBy  uuid.UUID `gorm:"type:uuid"`
	ScannedAt  time.Time `gorm:"column:scanned_at"`
}

// TableName specifies the database table name for scan events.
func (ScanEventDTO) TableName() string {
	return "scan_events"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var carrierID, messengerID *uuid.UUID
	if id := aggregate.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}
	if id := aggregate.MessengerID(); id != nil {
		raw := id.Bytes()
		messengerID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:               item.ID().Bytes(),
			OrderID:          aggregate.ID().Bytes(),
			ProductCode:      item.ProductCode(),
			Barcode:          item.Barcode(),
			RequiredQuantity: item.RequiredQuantity(),
		})
	}

	checklist := make([]ChecklistLineDTO, 0, len(aggregate.Checklist()))
	for _, line := range aggregate.Checklist() {
		checklist = append(checklist, ChecklistLineDTO{
			OrderID:          aggregate.ID().Bytes(),
			ItemID:           line.ItemID().Bytes(),
			RequiredQuantity: line.RequiredQuantity(),
			VerifiedCount:    line.VerifiedCount(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		Number:         aggregate.Number(),
		Status:         aggregate.Status().String(),
		DeliveryMethod: aggregate.DeliveryMethod().String(),
		PaymentMethod:  aggregate.PaymentMethod().String(),
		TotalAmount:    aggregate.TotalAmount().Amount(),
		CarrierID:      carrierID,
		MessengerID:    messengerID,
		Version:        aggregate.Version(),
		Items:          items,
		Checklist:      checklist,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	deliveryMethod, err := order.DeliveryMethodFromString(dto.DeliveryMethod)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	var carrierID, messengerID *kernel.UUID
	if dto.CarrierID != nil {
		cID, idErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if idErr != nil {
			return nil, idErr
		}
		carrierID = &cID
	}
	if dto.MessengerID != nil {
		mID, idErr := kernel.UUIDFromBytes((*dto.MessengerID)[:])
		if idErr != nil {
			return nil, idErr
		}
		messengerID = &mID
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, idErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewItem(itemID, itemDTO.ProductCode, itemDTO.Barcode, itemDTO.RequiredQuantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	checklist := make([]*order.ChecklistLine, 0, len(dto.Checklist))
	for _, lineDTO := range dto.Checklist {
		itemID, idErr := kernel.UUIDFromBytes(lineDTO.ItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		line, lineErr := order.RestoreChecklistLine(itemID, lineDTO.RequiredQuantity, lineDTO.VerifiedCount)
		if lineErr != nil {
			return nil, lineErr
		}
		checklist = append(checklist, line)
	}

	return order.RestoreOrder(id, dto.Number, status, deliveryMethod, paymentMethod,
		totalAmount, carrierID, messengerID, dto.Version, items, checklist)
}

func scanEventFromDomain(event order.ScanEvent) ScanEventDTO {
	return ScanEventDTO{
		OrderID:    event.OrderID().Bytes(),
		ItemID:     event.ItemID().Bytes(),
		ScanNumber: event.ScanNumber(),
		Barcode:    event.Barcode(),
		ScannedBy:  event.ScannedBy().Bytes(),
		ScannedAt:  event.ScannedAt(),
	}
}

func scanEventToDomain(dto ScanEventDTO) (order.ScanEvent, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.ScanEvent{}, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.ScanEvent{}, err
	}
	scannedBy, err := kernel.UUIDFromBytes(dto.ScannedBy[:])
	if err != nil {
		return order.ScanEvent{}, err
	}

	return order.NewScanEvent(orderID, itemID, dto.Barcode, dto.ScanNumber, scannedBy, dto.ScannedAt)
}
