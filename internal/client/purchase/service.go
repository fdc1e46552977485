package purchase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sherlockdomains/sherlock-go/internal/client/api"
	"github.com/sherlockdomains/sherlock-go/internal/client/auth"
	"github.com/sherlockdomains/sherlock-go/internal/models"
	pkgapi "github.com/sherlockdomains/sherlock-go/pkg/api"
)

var (
	// ErrContactRequired indicates incomplete registrant data. Checked before
	// any network call: ICANN registration would reject it downstream anyway,
	// and the remote failure would be opaque.
	ErrContactRequired = errors.New("contact information is required")

	// ErrPaymentMethodUnavailable indicates no offer in the bundle supports
	// the requested payment method
	ErrPaymentMethodUnavailable = errors.New("no offer supports the requested payment method")
)

// Service ведет переговоры о покупке домена: офферы и платежные инструкции.
// Никаких ретраев: search_id и offer_id фактически одноразовые, безопасно
// повторять только всю последовательность целиком.
type Service struct {
	apiClient *api.Client
	session   *auth.Session
}

// NewService создает сервис покупки поверх аутентифицированной сессии
func NewService(apiClient *api.Client, session *auth.Session) *Service {
	return &Service{
		apiClient: apiClient,
		session:   session,
	}
}

// GetPurchaseOffers requests payment options for a domain. The contact must
// be complete; the server answers 402 with the offer bundle on success.
func (s *Service) GetPurchaseOffers(ctx context.Context, searchID, domain string, contact *models.Contact) (*pkgapi.OffersResponse, error) {
	if contact == nil || !contact.IsValid() {
		return nil, ErrContactRequired
	}

	req := pkgapi.PurchaseRequest{
		Domain:             domain,
		ContactInformation: contact.ToWire(),
		SearchID:           searchID,
	}

	return s.apiClient.GetPurchaseOffers(ctx, s.session.AccessToken(), req)
}

// RequestPaymentDetails negotiates payment instructions for purchasing a
// domain. It does not charge anything: the returned details (checkout URL or
// lightning invoice) are completed by the caller out-of-band.
//
// A nil contact is fetched from the server-held profile. The selected offer
// is the first one whose payment_methods contains the requested method.
func (s *Service) RequestPaymentDetails(ctx context.Context, searchID, domain, paymentMethod string, contact *models.Contact) (*pkgapi.PaymentDetails, error) {
	// Контакт не передан: берем профиль, сохраненный на сервере
	if contact == nil {
		wire, err := s.apiClient.GetContactInformation(ctx, s.session.AccessToken())
		if err != nil {
			return nil, fmt.Errorf("failed to fetch contact information: %w", err)
		}
		fetched := models.ContactFromWire(*wire)
		contact = &fetched
	}

	offers, err := s.GetPurchaseOffers(ctx, searchID, domain, contact)
	if err != nil {
		return nil, err
	}

	return s.PaymentDetails(ctx, offers, paymentMethod)
}

// PaymentDetails selects an offer from an already fetched bundle and requests
// payment instructions for it
func (s *Service) PaymentDetails(ctx context.Context, offers *pkgapi.OffersResponse, paymentMethod string) (*pkgapi.PaymentDetails, error) {
	offer, err := selectOffer(offers.Offers, paymentMethod)
	if err != nil {
		return nil, err
	}

	return s.apiClient.GetPaymentDetails(ctx, offers.PaymentRequestURL, pkgapi.PaymentDetailsRequest{
		OfferID:             offer.ID,
		PaymentMethod:       paymentMethod,
		PaymentContextToken: offers.PaymentContextToken,
	})
}

// selectOffer выбирает первый оффер, поддерживающий запрошенный способ оплаты
func selectOffer(offers []pkgapi.Offer, paymentMethod string) (*pkgapi.Offer, error) {
	for i := range offers {
		if slices.Contains(offers[i].PaymentMethods, paymentMethod) {
			return &offers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPaymentMethodUnavailable, paymentMethod)
}
