package cartRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ShopMate/internal/api/cart"
	"ShopMate/internal/entity"
	contextPkg "ShopMate/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type CartItemDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	ProductID sql.NullString `db:"product_id"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *cartItemsRepository) AddItem(ctx context.Context, item entity.CartItem) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         item.ID,
		"user_id":    item.UserID,
		"product_id": item.ProductID,
		"created_at": item.CreatedAt,
	}

	query, args, err := sqlx.Named(queryAddCartItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for AddItem")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"product_id": item.ProductID,
			}).Warn("Product already in cart")
			return cart.ErrItemAlreadyInCart
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when adding cart item")
		return err
	}

	return nil
}

func (r *cartItemsRepository) GetItemsByUser(ctx context.Context, userID string) ([]entity.CartItem, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryGetCartItemsByUser, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for GetItemsByUser")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []CartItemDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing cart items")
		return nil, err
	}

	items := make([]entity.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}

	return items, nil
}

func (r *cartItemsRepository) GetItemByUserAndProduct(ctx context.Context, userID, productID string) (entity.CartItem, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryGetCartItemByUserAndProduct, map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})
	if err != nil {
		return entity.CartItem{}, err
	}
	query = r.q.Rebind(query)

	var row CartItemDB
	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.CartItem{}, cart.ErrCartItemNotFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when getting cart item")
		return entity.CartItem{}, err
	}

	return row.toEntity(), nil
}

func (r *cartItemsRepository) DeleteItem(ctx context.Context, userID, itemID string) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteCartItem, map[string]interface{}{
		"id":      itemID,
		"user_id": userID,
	})
	if err != nil {
		return 0, err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting cart item")
		return 0, err
	}

	return result.RowsAffected()
}

func (r *cartItemsRepository) ClearByUser(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryClearCartByUser, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when clearing cart")
		return err
	}

	return nil
}

func (row CartItemDB) toEntity() entity.CartItem {
	return entity.CartItem{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		ProductID: row.ProductID.String,
		CreatedAt: row.CreatedAt,
	}
}
