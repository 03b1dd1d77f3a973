package report

import "tyzox-be/internal/handler/dto"

func ToResponses(rows []*SalesRow) []dto.SalesRowResponse {
	out := make([]dto.SalesRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesRowResponse{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			CategoryName: r.CategoryName,
			TotalSold:    r.TotalSold,
			TotalRevenue: r.TotalRevenue.StringFixed(2),
		})
	}
	return out
}
