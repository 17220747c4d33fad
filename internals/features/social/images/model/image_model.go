package model

type ImageModel struct {
	IDImage    uint   `gorm:"column:id_image;primaryKey;autoIncrement" json:"-"`
	IDRequest  *uint  `gorm:"column:id_request;index" json:"-"`
	IDSupport  *uint  `gorm:"column:id_support;index" json:"-"`
	ObjectType int    `gorm:"column:object_type;not null" json:"-"`
	URL        string `gorm:"column:url;type:text;not null" json:"url"`
}

func (ImageModel) TableName() string {
	return "images"
}
