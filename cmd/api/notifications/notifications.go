package notifications

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/games-rental/cmd/api/rental"
)

type Ntfy struct {
	baseURL string
	enabled bool
	client  *http.Client
}

/* Builds an ntfy publisher. Each event goes to its own topic, named after baseURL with the event appended. */
func NewNtfy(enableNotifications bool, notificationsBaseURL string, client *http.Client) *Ntfy {
	if client == nil {
		client = &http.Client{}
	}
	return &Ntfy{
		baseURL: notificationsBaseURL,
		enabled: enableNotifications,
		client:  client,
	}
}

func (ntf *Ntfy) RentalCreated(ctx context.Context, r rental.Rental) error {
	message := fmt.Sprintf("New rental created:\nGame: %s\nCustomer: %s\nDays rented: %d\nPrice: %d",
		r.Game.Name, r.Customer.Name, r.DaysRented, r.OriginalPrice)
	return ntf.publish(ctx, "_Rental_created", message)
}

func (ntf *Ntfy) RentalReturned(ctx context.Context, r rental.Rental) error {
	fee := 0
	if r.DelayFee != nil {
		fee = *r.DelayFee
	}
	message := fmt.Sprintf("Rental returned:\nGame: %s\nCustomer: %s\nDelay fee: %d",
		r.Game.Name, r.Customer.Name, fee)
	return ntf.publish(ctx, "_Rental_returned", message)
}

/* Posts message to a topic. Disabled publishers drop every message silently. */
func (ntf *Ntfy) publish(ctx context.Context, topic, message string) error {
	if !ntf.enabled {
		return nil
	}

	url := ntf.baseURL + topic
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("error delivering message to topic (%s): %w", url, err)
	}
	resp, err := ntf.client.Do(req)
	if err != nil {
		return fmt.Errorf("error delivering message to topic (%s): %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error delivering message to topic (%s): %w", url, rental.NewErrNotificationFailed(resp.StatusCode))
	}
	return nil
}
