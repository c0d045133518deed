package customercontroller

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/storelane/storefront-api/models"
)

type AddressInput struct {
	Type       string `json:"type"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Company    string `json:"company"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"is_default"`
}

func buildAddresses(store string, inputs []AddressInput) []models.CustomerAddress {
	addresses := make([]models.CustomerAddress, 0, len(inputs))
	for _, in := range inputs {
		addrType := in.Type
		if addrType == "" {
			addrType = string(models.AddressTypeShipping)
		}
		addresses = append(addresses, models.CustomerAddress{
			StoreName:  store,
			Type:       models.AddressType(addrType),
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Company:    in.Company,
			Address1:   in.Address1,
			Address2:   in.Address2,
			City:       in.City,
			State:      in.State,
			PostalCode: in.PostalCode,
			Country:    in.Country,
			Phone:      in.Phone,
			IsDefault:  in.IsDefault,
		})
	}
	return addresses
}

// IsDuplicateKey reports whether err is a unique-constraint violation.
// The email-per-store index on customers is the case the dashboard
// surfaces distinctly.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}
