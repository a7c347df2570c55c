package queries

import (
	"context"
	"encoding/json"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders straight from the orders table.
// The snapshot columns are returned as stored, never joined back to the
// offer catalog, so the listing always shows the purchased terms.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(actor, order.StatusInProgress)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//	fmt.Printf("%d orders in progress\n", len(active))
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to list the actor's orders, newest first.
// Customers are matched on customer_id, business owners on business_id.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	participantColumn := "customer_id"
	if query.Actor().IsBusiness() {
		participantColumn = "business_id"
	}

	sql := `
		SELECT
			id,
			customer_id,
			business_id,
			offer_id,
			snapshot_title,
			snapshot_description,
			snapshot_tier,
			snapshot_price,
			snapshot_revisions,
			snapshot_delivery_days,
			snapshot_features,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE ` + participantColumn + ` = ?`
	args := []any{query.Actor().ID().String()}

	if query.StatusFilter() != order.StatusUnknown {
		sql += ` AND status = ?`
		args = append(args, query.StatusFilter().String())
	}
	sql += `
		ORDER BY created_at DESC`

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOrdersQueryResponse
		var id, customerID, businessID, offerID uuid.UUID
		var featuresJSON []byte

		err = rows.Scan(
			&id,
			&customerID,
			&businessID,
			&offerID,
			&orderResp.Title,
			&orderResp.Description,
			&orderResp.Tier,
			&orderResp.Price,
			&orderResp.Revisions,
			&orderResp.DeliveryDays,
			&featuresJSON,
			&orderResp.Status,
			&orderResp.CreatedAt,
			&orderResp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if len(featuresJSON) > 0 {
			if err = json.Unmarshal(featuresJSON, &orderResp.Features); err != nil {
				return nil, err
			}
		}
		if orderResp.Features == nil {
			orderResp.Features = make([]string, 0)
		}

		if orderResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if orderResp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if orderResp.BusinessID, err = kernel.UUIDFromBytes(businessID[:]); err != nil {
			return nil, err
		}
		if orderResp.OfferID, err = kernel.UUIDFromBytes(offerID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
