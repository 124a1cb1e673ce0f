package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type catalogEntry struct {
	ID           string
	Name         string
	Translations string
	Price        float64
}

var catalog = []catalogEntry{
	{"prod-linen-shirt", "Linen Shirt", `{"fr":"Chemise en lin","es":"Camisa de lino","de":"Leinenhemd"}`, 59},
	{"prod-wool-coat", "Wool Coat", `{"fr":"Manteau en laine","es":"Abrigo de lana","de":"Wollmantel"}`, 240},
	{"prod-silk-scarf", "Silk Scarf", `{"fr":"Foulard en soie","es":"Pañuelo de seda","de":"Seidenschal"}`, 45},
	{"prod-denim-jacket", "Denim Jacket", `{"fr":"Veste en jean","es":"Chaqueta vaquera","de":"Jeansjacke"}`, 120},
	{"prod-cashmere-knit", "Cashmere Knit", `{"fr":"Pull en cachemire","es":"Jersey de cachemira","de":"Kaschmirpullover"}`, 180},
	{"prod-leather-belt", "Leather Belt", `{"fr":"Ceinture en cuir","es":"Cinturón de cuero","de":"Ledergürtel"}`, 35},
	{"prod-pleated-skirt", "Pleated Skirt", `{"fr":"Jupe plissée","es":"Falda plisada","de":"Faltenrock"}`, 75},
}

// Weighted so most orders end up delivered.
var statuses = []string{
	"delivered", "delivered", "delivered", "delivered", "completed",
	"shipped", "processing", "pending", "out_for_delivery",
	"cancelled", "rejected",
}

var positions = []string{"Pattern Cutter", "Store Associate", "Visual Merchandiser", "E-commerce Analyst"}

type demoData struct {
	Users     []models.User
	Orders    []models.Order
	Items     []models.OrderItem
	BlogPosts []models.BlogPost
	Messages  []models.ContactMessage
	Designs   []models.DesignRequest
	Careers   []models.CareerApplication
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// generate builds days of history ending the day before today. The same
// seed always produces the same data.
func generate(seed int64, days, maxPerDay int, today time.Time) demoData {
	rng := rand.New(rand.NewSource(seed))
	var d demoData

	at := func(day time.Time) time.Time {
		return day.Add(time.Duration(rng.Int63n(int64(24 * time.Hour))))
	}
	newID := func() uuid.UUID {
		return uuid.Must(uuid.NewRandomFromReader(rng))
	}

	for i := days; i >= 1; i-- {
		day := today.AddDate(0, 0, -i)

		if rng.Intn(3) == 0 {
			d.Users = append(d.Users, models.User{
				ID:        newID(),
				Email:     fmt.Sprintf("customer%d@example.com", len(d.Users)+1),
				Name:      fmt.Sprintf("Customer %d", len(d.Users)+1),
				Status:    "active",
				CreatedAt: at(day),
			})
		}

		for n := rng.Intn(maxPerDay + 1); n > 0 && len(d.Users) > 0; n-- {
			user := d.Users[rng.Intn(len(d.Users))]
			order := models.Order{
				ID:          newID().String(),
				UserID:      user.ID.String(),
				OrderNumber: fmt.Sprintf("MOD-%06d", len(d.Orders)+1),
				Status:      statuses[rng.Intn(len(statuses))],
				CreatedAt:   at(day),
			}
			for lines := rng.Intn(3) + 1; lines > 0; lines-- {
				p := catalog[rng.Intn(len(catalog))]
				qty := rng.Intn(3) + 1
				d.Items = append(d.Items, models.OrderItem{
					ID:                      newID().String(),
					OrderID:                 order.ID,
					ProductID:               p.ID,
					ProductName:             p.Name,
					ProductNameTranslations: datatypes.JSON(p.Translations),
					Price:                   p.Price,
					Quantity:                qty,
					Subtotal:                p.Price * float64(qty),
					CreatedAt:               order.CreatedAt,
				})
				order.Subtotal += p.Price * float64(qty)
			}
			order.Tax = float64(int(order.Subtotal*7.5)) / 100
			order.TotalAmount = order.Subtotal + order.Tax
			order.UpdatedAt = order.CreatedAt
			if order.Status == "delivered" {
				delivered := order.CreatedAt.AddDate(0, 0, 3)
				order.DeliveredAt = &delivered
			}
			d.Orders = append(d.Orders, order)
		}

		if rng.Intn(7) == 0 {
			d.BlogPosts = append(d.BlogPosts, models.BlogPost{ID: newID().String(), Title: fmt.Sprintf("Journal entry %d", len(d.BlogPosts)+1), CreatedAt: at(day)})
		}
		if rng.Intn(2) == 0 {
			d.Messages = append(d.Messages, models.ContactMessage{ID: newID().String(), Email: fmt.Sprintf("visitor%d@example.com", rng.Intn(500)), CreatedAt: at(day)})
		}
		if rng.Intn(5) == 0 {
			d.Designs = append(d.Designs, models.DesignRequest{ID: newID().String(), Email: fmt.Sprintf("client%d@example.com", rng.Intn(200)), Status: "new", CreatedAt: at(day)})
		}
		if rng.Intn(10) == 0 {
			d.Careers = append(d.Careers, models.CareerApplication{ID: newID().String(), Position: positions[rng.Intn(len(positions))], CreatedAt: at(day)})
		}
	}
	return d
}

func migrate(ecommerce, cms *gorm.DB) error {
	if err := ecommerce.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{}); err != nil {
		return fmt.Errorf("migrate ecommerce: %w", err)
	}
	if err := cms.AutoMigrate(&models.BlogPost{}, &models.ContactMessage{}, &models.DesignRequest{}, &models.CareerApplication{}); err != nil {
		return fmt.Errorf("migrate cms: %w", err)
	}
	return nil
}

func insert(ecommerce, cms *gorm.DB, d demoData) error {
	const batch = 200

	err := ecommerce.Transaction(func(tx *gorm.DB) error {
		if len(d.Users) > 0 {
			if err := tx.CreateInBatches(d.Users, batch).Error; err != nil {
				return fmt.Errorf("users: %w", err)
			}
		}
		if len(d.Orders) > 0 {
			if err := tx.CreateInBatches(d.Orders, batch).Error; err != nil {
				return fmt.Errorf("orders: %w", err)
			}
		}
		if len(d.Items) > 0 {
			if err := tx.CreateInBatches(d.Items, batch).Error; err != nil {
				return fmt.Errorf("order items: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return cms.Transaction(func(tx *gorm.DB) error {
		for _, set := range []struct {
			name string
			n    int
			rows any
		}{
			{"blog posts", len(d.BlogPosts), d.BlogPosts},
			{"contact messages", len(d.Messages), d.Messages},
			{"design requests", len(d.Designs), d.Designs},
			{"career applications", len(d.Careers), d.Careers},
		} {
			if set.n == 0 {
				continue
			}
			if err := tx.CreateInBatches(set.rows, batch).Error; err != nil {
				return fmt.Errorf("%s: %w", set.name, err)
			}
		}
		return nil
	})
}
