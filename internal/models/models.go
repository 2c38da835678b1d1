package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order lifecycle statuses as stored in the orders table.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

type Product struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"      json:"id"`
	Name            string    `gorm:"not null"                  json:"name"`
	Slug            string    `gorm:"uniqueIndex;not null"      json:"slug"`
	Category        string    `gorm:"index;not null"            json:"category"`
	Type            string    `gorm:"not null"                  json:"type"`
	Price           float64   `gorm:"not null"                  json:"price"`
	OriginalPrice   *float64  `json:"original_price"`
	ImageURL        *string   `json:"image_url"`
	Description     *string   `json:"description"`
	NutritionalInfo *string   `json:"nutritional_info"`
	Weight          *string   `json:"weight"`
	InStock         bool      `gorm:"default:true"              json:"in_stock"`
	StockQuantity   int       `gorm:"default:0"                 json:"stock_quantity"`
	Rating          *float64  `json:"rating"`
	ReviewsCount    *int      `json:"reviews_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Order struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"           json:"id"`
	OrderNumber     string         `gorm:"uniqueIndex;not null"           json:"order_number"`
	CustomerName    string         `gorm:"not null"                       json:"customer_name"`
	CustomerEmail   string         `gorm:"not null"                       json:"customer_email"`
	CustomerPhone   *string        `json:"customer_phone"`
	ShippingAddress datatypes.JSON `json:"shipping_address"`
	BillingAddress  datatypes.JSON `json:"billing_address"`
	Status          string         `gorm:"index;not null;default:pending" json:"status"`
	PaymentStatus   string         `gorm:"not null;default:pending"       json:"payment_status"`
	PaymentMethod   *string        `json:"payment_method"`
	Subtotal        float64        `gorm:"not null"                       json:"subtotal"`
	ShippingCost    float64        `gorm:"default:0"                      json:"shipping_cost"`
	Tax             float64        `gorm:"default:0"                      json:"tax"`
	Total           float64        `gorm:"not null"                       json:"total"`
	Notes           *string        `json:"notes"`
	TrackingNumber  *string        `json:"tracking_number"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type OrderItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"      json:"id"`
	OrderID      uuid.UUID  `gorm:"type:uuid;index;not null"  json:"order_id"`
	ProductID    *uuid.UUID `gorm:"type:uuid"                 json:"product_id"`
	ProductName  string     `gorm:"not null"                  json:"product_name"`
	ProductImage *string    `json:"product_image"`
	Quantity     int        `gorm:"not null;check:quantity>0" json:"quantity"`
	UnitPrice    float64    `gorm:"not null"                  json:"unit_price"`
	TotalPrice   float64    `gorm:"not null"                  json:"total_price"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Profile is a storefront customer record shown on the admin users screen.
// Role assignments live separately in UserRole.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Email     string    `gorm:"not null"                 json:"email"`
	FullName  *string   `json:"full_name"`
	AvatarURL *string   `json:"avatar_url"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type UserRole struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Role   string    `gorm:"not null"                 json:"role"`
}

func (r *UserRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// User is a back-office console account, distinct from storefront profiles.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null;default:user"    json:"role"`
}

type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"      json:"id"`
	Token     string `gorm:"unique;not null" json:"token"`
	UserID    uint   `gorm:"index;not null"  json:"user_id"`
	Role      string `gorm:"not null"        json:"role"`
	ExpiresAt int64  `gorm:"not null"        json:"expires_at"`
	Revoked   bool   `gorm:"default:false"   json:"revoked"`
}
