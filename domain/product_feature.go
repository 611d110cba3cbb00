package domain

// ProductFeature describes a product along one named axis, e.g.
// ("yarn", "cotton") or ("color", "sage"). A product usually carries
// several rows. The content-based scorer treats these as read-only
// catalog metadata.
type ProductFeature struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID    uint64  `gorm:"column:product_id;not null;index" json:"product_id"`
	FeatureName  string  `gorm:"column:feature_name;type:text;not null" json:"feature_name"`
	FeatureValue string  `gorm:"column:feature_value;type:text;not null" json:"feature_value"`
	Weight       float64 `gorm:"column:weight;type:numeric;default:1" json:"weight"`
}

func (ProductFeature) TableName() string {
	return "product_features"
}
