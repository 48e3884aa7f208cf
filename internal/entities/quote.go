package entities

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryInspiration Category = "inspiration"
	CategoryMotivation  Category = "motivation"
	CategoryLove        Category = "love"
	CategoryWisdom      Category = "wisdom"
	CategorySuccess     Category = "success"
	CategoryLife        Category = "life"
	CategoryHappiness   Category = "happiness"
	CategoryFriendship  Category = "friendship"

	DefaultCategory = CategoryInspiration
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryInspiration,
	CategoryMotivation,
	CategoryLove,
	CategoryWisdom,
	CategorySuccess,
	CategoryLife,
	CategoryHappiness,
	CategoryFriendship,
}

type BackgroundColor string

const (
	BackgroundColorBlue   BackgroundColor = "blue"
	BackgroundColorPurple BackgroundColor = "purple"
	BackgroundColorGreen  BackgroundColor = "green"
	BackgroundColorOrange BackgroundColor = "orange"
	BackgroundColorPink   BackgroundColor = "pink"
	BackgroundColorTeal   BackgroundColor = "teal"

	DefaultBackgroundColor = BackgroundColorBlue
)

// ColorOption describes how a background color is presented to users.
type ColorOption struct {
	Value BackgroundColor `json:"value"`
	Label string          `json:"label"`
	From  string          `json:"from"` // Gradient start, hex
	To    string          `json:"to"`   // Gradient end, hex
}

// Palette lists every background color in display order.
var Palette = []ColorOption{
	{Value: BackgroundColorBlue, Label: "Ocean Blue", From: "#60A5FA", To: "#3B82F6"},
	{Value: BackgroundColorPurple, Label: "Royal Purple", From: "#A78BFA", To: "#8B5CF6"},
	{Value: BackgroundColorGreen, Label: "Nature Green", From: "#34D399", To: "#10B981"},
	{Value: BackgroundColorOrange, Label: "Sunset Orange", From: "#FB923C", To: "#F97316"},
	{Value: BackgroundColorPink, Label: "Rose Pink", From: "#F472B6", To: "#EC4899"},
	{Value: BackgroundColorTeal, Label: "Ocean Teal", From: "#5EEAD4", To: "#14B8A6"},
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the display name, e.g. "Motivation".
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// IsValid reports whether b is a known background color.
func (b BackgroundColor) IsValid() bool {
	for _, opt := range Palette {
		if b == opt.Value {
			return true
		}
	}
	return false
}

// ParseCategory resolves free-form input to a category, falling back to
// DefaultCategory for empty or unknown values.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return DefaultCategory
	}
	return c
}

// ParseBackgroundColor resolves free-form input to a background color,
// falling back to DefaultBackgroundColor for empty or unknown values.
func ParseBackgroundColor(s string) BackgroundColor {
	b := BackgroundColor(strings.ToLower(strings.TrimSpace(s)))
	if !b.IsValid() {
		return DefaultBackgroundColor
	}
	return b
}

// ColorOptionFor returns the palette entry for b, or the default entry.
func ColorOptionFor(b BackgroundColor) ColorOption {
	for _, opt := range Palette {
		if opt.Value == b {
			return opt
		}
	}
	return Palette[0]
}

type Quote struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Text            string          `gorm:"type:text;not null" json:"text"`
	Author          string          `gorm:"index;size:256;not null" json:"author"`
	Category        Category        `gorm:"index;size:20;default:'inspiration'" json:"category"`
	BackgroundColor BackgroundColor `gorm:"size:20;default:'blue'" json:"background_color"`
	IsFavorite      bool            `gorm:"index;default:false" json:"is_favorite"`
	CreatedAt       time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (Quote) TableName() string {
	return "quotes"
}

// ShareText formats the quote the way it is handed to share sheets.
// Example: "Stay hungry." - Steve Jobs
func (q Quote) ShareText() string {
	return fmt.Sprintf("\"%s\" - %s", q.Text, q.Author)
}

// QuoteInput carries the fields accepted when creating a quote.
type QuoteInput struct {
	Text            string
	Author          string
	Category        string
	BackgroundColor string
	IsFavorite      bool
}

// QuoteUpdate carries a partial update. Nil fields keep their stored value.
type QuoteUpdate struct {
	Text            *string
	Author          *string
	Category        *string
	BackgroundColor *string
	IsFavorite      *bool
}

// IsEmpty reports whether the update changes nothing.
func (u QuoteUpdate) IsEmpty() bool {
	return u.Text == nil && u.Author == nil && u.Category == nil &&
		u.BackgroundColor == nil && u.IsFavorite == nil
}
