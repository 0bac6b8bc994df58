package converter

import (
	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/model"
)

func posItemsToResponse(items []entity.POSTransactionItem) []model.POSItemResponse {
	responses := make([]model.POSItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, model.POSItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Variant:   item.Variant,
			LineTotal: item.LineTotal,
		})
	}
	return responses
}

func SaleToResponse(sale *entity.POSTransaction) *model.SaleResponse {
	return &model.SaleResponse{
		ID:                sale.ID,
		TransactionNumber: sale.TransactionNumber,
		Items:             posItemsToResponse(sale.Items),
		Subtotal:          sale.Subtotal,
		Tax:               sale.Tax,
		Total:             sale.Total,
		PaymentMethod:     string(sale.PaymentMethod),
		PaymentStatus:     string(sale.PaymentStatus),
		PaidAt:            sale.PaidAt,
		CreatedAt:         sale.CreatedAt,
	}
}

// SaleToInvoice strips everything invoice rendering does not need. The user
// reference in particular never leaves through the public route.
func SaleToInvoice(sale *entity.POSTransaction) *model.InvoiceResponse {
	return &model.InvoiceResponse{
		TransactionNumber: sale.TransactionNumber,
		Items:             posItemsToResponse(sale.Items),
		Subtotal:          sale.Subtotal,
		Tax:               sale.Tax,
		Total:             sale.Total,
		PaymentMethod:     string(sale.PaymentMethod),
		PaymentStatus:     string(sale.PaymentStatus),
		PaidAt:            sale.PaidAt,
		CreatedAt:         sale.CreatedAt,
	}
}
