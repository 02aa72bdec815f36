package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/salesdesk/app/models"
	"github.com/shashiranjanraj/salesdesk/pkg/logger"
)

// batchSize bounds the rows per insert and the ids per IN clause.
const batchSize = 500

// OrderRepository handles orders together with their line items.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order header and one line item per requested item in
// a single transaction. If any item is rejected (for example an unknown
// product) nothing is written.
func (r *OrderRepository) Create(ctx context.Context, in models.NewOrder) (models.Order, error) {
	if err := validateInput(in); err != nil {
		return models.Order{}, track("order", "create", err)
	}

	order := models.Order{CustomerID: in.CustomerID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return fmt.Errorf("orders: create header: %w", err)
		}

		if len(in.Items) == 0 {
			return nil
		}

		items := make([]models.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			unit := it.UnitKind
			if unit == "" {
				unit = models.DefaultUnitKind
			}
			items = append(items, models.OrderItem{
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitKind:  unit,
			})
		}
		if err := tx.Omit(clause.Associations).CreateInBatches(&items, batchSize).Error; err != nil {
			return fmt.Errorf("orders: create items of %d: %w", order.ID, err)
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return models.Order{}, track("order", "create", err)
	}

	logger.Debug("order created", "order_id", order.ID, "items", len(order.Items))
	return order, track("order", "create", nil)
}

// Delete removes the line items of order id and then the order itself,
// both or neither. It returns the number of order rows removed.
func (r *OrderRepository) Delete(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("orders: delete items of %d: %w", id, err)
		}
		res := tx.Delete(&models.Order{}, id)
		if res.Error != nil {
			return fmt.Errorf("orders: delete %d: %w", id, res.Error)
		}
		removed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, track("order", "delete", err)
	}
	return removed, track("order", "delete", nil)
}

// SetDocumentGenerated records whether the order's document has been
// produced. An unknown id is not an error; RowsAffected is 0.
func (r *OrderRepository) SetDocumentGenerated(ctx context.Context, id uint, generated bool) (models.DocumentStatus, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("document_generated", generated)
	if res.Error != nil {
		return models.DocumentStatus{}, track("order", "set_document", fmt.Errorf("orders: set document flag %d: %w", id, res.Error))
	}
	status := models.DocumentStatus{ID: id, DocumentGenerated: generated, RowsAffected: res.RowsAffected}
	return status, track("order", "set_document", nil)
}

// All returns every order in id order with its lines joined to products.
// Lines of all orders are fetched with one unfiltered join.
func (r *OrderRepository) All(ctx context.Context) ([]models.OrderDetail, error) {
	db := r.db.WithContext(ctx)

	var orders []models.Order
	if err := db.Order("id").Find(&orders).Error; err != nil {
		return nil, track("order", "list", fmt.Errorf("orders: list: %w", err))
	}
	if len(orders) == 0 {
		return []models.OrderDetail{}, track("order", "list", nil)
	}

	lines, err := r.linesFor(db, nil)
	if err != nil {
		return nil, track("order", "list", err)
	}

	details := make([]models.OrderDetail, len(orders))
	for i, o := range orders {
		details[i] = models.OrderDetail{Order: o, Lines: lines[o.ID]}
		if details[i].Lines == nil {
			details[i].Lines = []models.OrderLine{}
		}
	}
	return details, track("order", "list", nil)
}

// Find returns one order with its lines.
func (r *OrderRepository) Find(ctx context.Context, id uint) (models.OrderDetail, error) {
	db := r.db.WithContext(ctx)

	var order models.Order
	if err := db.Where("id = ?", id).First(&order).Error; err != nil {
		return models.OrderDetail{}, track("order", "find", err)
	}

	lines, err := r.linesFor(db, []uint{id})
	if err != nil {
		return models.OrderDetail{}, track("order", "find", err)
	}
	detail := models.OrderDetail{Order: order, Lines: lines[id]}
	if detail.Lines == nil {
		detail.Lines = []models.OrderLine{}
	}
	return detail, track("order", "find", nil)
}

type lineRow struct {
	OrderID     uint
	ProductID   uint
	ProductName string
	Price       float64
	Quantity    float64
	UnitKind    string
}

// linesFor loads the lines of the given orders grouped by order id. A nil
// orderIDs loads the lines of every order. Ids are bound in chunks of
// batchSize to stay under the store's bind variable limit.
func (r *OrderRepository) linesFor(db *gorm.DB, orderIDs []uint) (map[uint][]models.OrderLine, error) {
	var rows []lineRow
	if orderIDs == nil {
		if err := lineQuery(db).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("orders: list lines: %w", err)
		}
	}
	for start := 0; start < len(orderIDs); start += batchSize {
		end := min(start+batchSize, len(orderIDs))
		var chunk []lineRow
		if err := lineQuery(db).Where("oi.order_id IN ?", orderIDs[start:end]).Scan(&chunk).Error; err != nil {
			return nil, fmt.Errorf("orders: list lines: %w", err)
		}
		rows = append(rows, chunk...)
	}

	out := make(map[uint][]models.OrderLine)
	for _, row := range rows {
		out[row.OrderID] = append(out[row.OrderID], models.OrderLine{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Price:       row.Price,
			Quantity:    row.Quantity,
			UnitKind:    row.UnitKind,
		})
	}
	return out, nil
}

func lineQuery(db *gorm.DB) *gorm.DB {
	return db.Table("order_items AS oi").
		Select("oi.order_id, p.id AS product_id, p.name AS product_name, p.price, oi.quantity, oi.unit_kind").
		Joins("JOIN products p ON p.id = oi.product_id").
		Order("oi.id")
}
