package httpadapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"campaign-pricing/internal/core/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CampaignPricingRequest is the body of POST /pricing/quote. Clients in the
// wild send several spellings of the same field; they are all accepted here
// and resolved once by Resolve, so nothing past this type sees an alias.
type CampaignPricingRequest struct {
	IndustryType    string `json:"industry_type"`
	IndustryTypeAlt string `json:"industryType"`
	Industry        string `json:"industry"`

	AdvertType    string `json:"advert_type"`
	AdvertTypeAlt string `json:"advertType"`
	AdType        string `json:"ad_type"`

	CoverageType    string `json:"coverage_type"`
	CoverageTypeAlt string `json:"coverageType"`
	Coverage        string `json:"coverage"`

	DurationDays    *int `json:"duration_days"`
	DurationDaysAlt *int `json:"durationDays"`
	Duration        *int `json:"duration"`

	TargetPostcode    *string `json:"target_postcode"`
	TargetPostcodeAlt *string `json:"targetPostcode"`
	Postcode          *string `json:"postcode"`
	ZipCode           *string `json:"zip_code"`

	TargetState    *string `json:"target_state"`
	TargetStateAlt *string `json:"targetState"`
	State          *string `json:"state"`

	TargetCountry    *string `json:"target_country"`
	TargetCountryAlt *string `json:"targetCountry"`
	Country          *string `json:"country"`
}

// resolvedPricingRequest is the canonical form validated before it becomes
// a domain.PricingRequest.
type resolvedPricingRequest struct {
	IndustryType   string  `validate:"required,max=64"`
	AdvertType     string  `validate:"required,max=64"`
	Coverage       string  `validate:"required"`
	TargetPostcode *string `validate:"omitempty,max=16"`
	TargetState    *string `validate:"omitempty,max=10"`
	TargetCountry  *string `validate:"omitempty,iso3166_1_alpha2"`
	DurationDays   int
}

// Resolve picks the first present spelling of each field, validates the
// result and converts it to a domain.PricingRequest. Zero, negative or
// missing durations are clamped to one day.
func (r CampaignPricingRequest) Resolve() (domain.PricingRequest, error) {
	resolved := resolvedPricingRequest{
		IndustryType:   firstString(r.IndustryType, r.IndustryTypeAlt, r.Industry),
		AdvertType:     firstString(r.AdvertType, r.AdvertTypeAlt, r.AdType),
		Coverage:       firstString(r.CoverageType, r.CoverageTypeAlt, r.Coverage),
		TargetPostcode: firstPtr(r.TargetPostcode, r.TargetPostcodeAlt, r.Postcode, r.ZipCode),
		TargetState:    upperPtr(firstPtr(r.TargetState, r.TargetStateAlt, r.State)),
		TargetCountry:  upperPtr(firstPtr(r.TargetCountry, r.TargetCountryAlt, r.Country)),
	}
	if d := firstInt(r.DurationDays, r.DurationDaysAlt, r.Duration); d != nil {
		resolved.DurationDays = *d
	}
	if err := validate.Struct(resolved); err != nil {
		return domain.PricingRequest{}, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	coverage, err := domain.ParseCoverageType(resolved.Coverage)
	if err != nil {
		return domain.PricingRequest{}, err
	}
	return domain.PricingRequest{
		IndustryType:   resolved.IndustryType,
		AdvertType:     resolved.AdvertType,
		Coverage:       coverage,
		DurationDays:   domain.ClampDurationDays(resolved.DurationDays),
		TargetPostcode: resolved.TargetPostcode,
		TargetState:    resolved.TargetState,
		TargetCountry:  resolved.TargetCountry,
	}, nil
}

// parseReachQuery reads GET /pricing/reach parameters.
func parseReachQuery(q url.Values) (domain.ReachRequest, error) {
	coverage, err := domain.ParseCoverageType(firstString(q.Get("coverage"), q.Get("coverage_type")))
	if err != nil {
		return domain.ReachRequest{}, err
	}
	req := domain.ReachRequest{
		Coverage:       coverage,
		TargetPostcode: optional(firstString(q.Get("postcode"), q.Get("target_postcode"))),
		TargetState:    upperPtr(optional(firstString(q.Get("state"), q.Get("target_state")))),
		TargetCountry:  upperPtr(optional(firstString(q.Get("country"), q.Get("target_country")))),
	}
	if req.TargetCountry != nil {
		if err = validate.Var(*req.TargetCountry, "iso3166_1_alpha2"); err != nil {
			return domain.ReachRequest{}, fmt.Errorf("%w: country: %v", domain.ErrInvalidRequest, err)
		}
	}
	return req, nil
}

func firstString(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func firstPtr(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			if p := optional(*v); p != nil {
				return p
			}
		}
	}
	return nil
}

func firstInt(values ...*int) *int {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func upperPtr(s *string) *string {
	if s == nil {
		return nil
	}
	u := strings.ToUpper(*s)
	return &u
}
