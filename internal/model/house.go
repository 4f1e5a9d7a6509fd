package model

import "time"

// HouseStatus enumerates the lifecycle states of a listing.
type HouseStatus string

const (
	StatusAvailable HouseStatus = "available"
	StatusSold      HouseStatus = "sold"
	StatusReserved  HouseStatus = "reserved"
)

// Contact holds seller contact details shown on the listing page.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Characteristics groups structural attributes of the building.
type Characteristics struct {
	YearBuilt    int    `json:"year_built,omitempty"`
	WallMaterial string `json:"wall_material,omitempty"`
	Heating      string `json:"heating,omitempty"`
	RoofType     string `json:"roof_type,omitempty"`
}

// Location groups address geodata.
type Location struct {
	City      string  `json:"city,omitempty"`
	District  string  `json:"district,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Infrastructure groups proximity flags and distances in meters.
type Infrastructure struct {
	NearSchool        bool `json:"near_school,omitempty"`
	NearPark          bool `json:"near_park,omitempty"`
	NearTransport     bool `json:"near_transport,omitempty"`
	SchoolDistance    int  `json:"school_distance,omitempty"`
	TransportDistance int  `json:"transport_distance,omitempty"`
}

// Utilities groups connection flags.
type Utilities struct {
	Gas         bool `json:"gas,omitempty"`
	Water       bool `json:"water,omitempty"`
	Sewage      bool `json:"sewage,omitempty"`
	Electricity bool `json:"electricity,omitempty"`
}

// House represents a real-estate listing. Nested attribute groups and the
// image list are stored as JSON columns to keep the document shape of the
// record; the fields the catalog filters on are real columns.
type House struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Title       string      `json:"title" gorm:"size:255;not null"`
	Price       float64     `json:"price" gorm:"not null;index"`
	Address     string      `json:"address" gorm:"size:512;not null"`
	Description string      `json:"description" gorm:"type:text;not null"`
	Bedrooms    int         `json:"bedrooms" gorm:"not null;index"`
	Bathrooms   int         `json:"bathrooms" gorm:"not null"`
	Area        float64     `json:"area" gorm:"not null"`
	PlotArea    float64     `json:"plot_area,omitempty"`
	Floors      int         `json:"floors,omitempty" gorm:"index"`
	Status      HouseStatus `json:"status" gorm:"size:20;default:'available';index"`

	WithRepair    bool `json:"with_repair" gorm:"index"`
	WithFurniture bool `json:"with_furniture"`

	Images          []string         `json:"images" gorm:"serializer:json"`
	Contact         Contact          `json:"contact" gorm:"serializer:json"`
	Characteristics *Characteristics `json:"characteristics,omitempty" gorm:"serializer:json"`
	Location        *Location        `json:"location,omitempty" gorm:"serializer:json"`
	Infrastructure  *Infrastructure  `json:"infrastructure,omitempty" gorm:"serializer:json"`
	Utilities       *Utilities       `json:"utilities,omitempty" gorm:"serializer:json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
