package analyticssvc

import (
	"context"

	salesmodels "sales_analytics/internal/api/sales/models"
	"sales_analytics/internal/utility"
)

// UnknownCategory là bucket cho các đơn không resolve được category
// (product không tồn tại, hoặc product chưa có category).
const UnknownCategory = "unknown"

// CategoryResolver tra category của product cho từng đơn hàng.
// Join theo productId đã chuẩn hóa về string key: id dạng số và dạng chuỗi
// của cùng một product không được phép miss nhau.
type CategoryResolver struct {
	catalog ProductCatalog
}

// NewCategoryResolver tạo CategoryResolver trên một ProductCatalog
func NewCategoryResolver(catalog ProductCatalog) *CategoryResolver {
	return &CategoryResolver{catalog: catalog}
}

// BuildCategoryIndex đọc toàn bộ catalog và dựng index productId (chuẩn hóa) → category.
func (r *CategoryResolver) BuildCategoryIndex(ctx context.Context) (map[string]string, error) {
	products, err := r.catalog.AllProducts(ctx)
	if err != nil {
		return nil, err
	}
	return CategoryIndexOf(products), nil
}

// CategoryIndexOf dựng index category từ danh sách product (pure, dùng được trong test).
func CategoryIndexOf(products []salesmodels.SalesProduct) map[string]string {
	index := make(map[string]string, len(products))
	for _, p := range products {
		key := utility.ToStringKey(p.ProductId)
		if key == "" {
			continue
		}
		index[key] = p.Category
	}
	return index
}

// ResolveCategory tra category của một đơn trong index.
// Không tìm thấy product, hoặc category rỗng → UnknownCategory (outer-join:
// đơn vẫn được giữ lại và đóng góp doanh thu, không bị loại bỏ).
func ResolveCategory(index map[string]string, order salesmodels.SalesOrder) string {
	category, ok := index[utility.ToStringKey(order.ProductId)]
	if !ok || category == "" {
		return UnknownCategory
	}
	return category
}
