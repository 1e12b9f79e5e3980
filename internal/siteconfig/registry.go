// Package siteconfig is the typed registry of site configuration keys. Every
// key binds one Go value type; values are validated on the way in and decoded
// through the same type on the way out.
package siteconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	apperrors "psisite/internal/errors"
	"psisite/internal/model"
)

// Key names one configuration blob.
type Key string

const (
	KeyGeneralInfo          Key = "general_info"
	KeyContactInfo          Key = "contact_info"
	KeyHeroSection          Key = "hero_section"
	KeyAboutSection         Key = "about_section"
	KeyServicesSection      Key = "services_section"
	KeyTestimonialsSection  Key = "testimonials_section"
	KeyFaqSection           Key = "faq_section"
	KeyContactSection       Key = "contact_section"
	KeyFooterSection        Key = "footer_section"
	KeyInspirationalSection Key = "inspirational_section"
	KeySectionsVisibility   Key = "sections_visibility"
	KeySectionsOrder        Key = "sections_order"
	KeyColors               Key = "colors"
	KeyMarketingPixels      Key = "marketing_pixels"
	KeySeoMeta              Key = "seo_meta"
	KeyHeroImage            Key = "hero_image"
	KeyAboutCredentials     Key = "about_credentials"
)

var registry = map[Key]func() any{
	KeyGeneralInfo:          func() any { return new(GeneralInfo) },
	KeyContactInfo:          func() any { return new(ContactInfo) },
	KeyHeroSection:          func() any { return new(HeroSection) },
	KeyAboutSection:         func() any { return new(AboutSection) },
	KeyServicesSection:      func() any { return new(ServicesSection) },
	KeyTestimonialsSection:  func() any { return new(BadgedSection) },
	KeyFaqSection:           func() any { return new(BadgedSection) },
	KeyContactSection:       func() any { return new(ContactSection) },
	KeyFooterSection:        func() any { return new(FooterSection) },
	KeyInspirationalSection: func() any { return new(InspirationalSection) },
	KeySectionsVisibility:   func() any { return new(SectionsVisibility) },
	KeySectionsOrder:        func() any { return new(SectionsOrder) },
	KeyColors:               func() any { return new(Colors) },
	KeyMarketingPixels:      func() any { return new(MarketingPixels) },
	KeySeoMeta:              func() any { return new(SeoMeta) },
	KeyHeroImage:            func() any { return new(HeroImage) },
	KeyAboutCredentials:     func() any { return new(AboutCredentials) },
}

var validate = validator.New()

// Keys lists every registered key in lexical order.
func Keys() []Key {
	keys := make([]Key, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Parse converts a raw key string into a registered Key.
func Parse(s string) (Key, error) {
	k := Key(s)
	if _, ok := registry[k]; !ok {
		return "", fmt.Errorf("config key %q: %w", s, apperrors.ErrUnknownConfigKey)
	}
	return k, nil
}

// Decode parses raw into the value type bound to key. Unknown fields, type
// mismatches and failed validation rules all report ErrValidation.
func Decode(key Key, raw []byte) (any, error) {
	newValue, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("config key %q: %w", key, apperrors.ErrUnknownConfigKey)
	}

	value := newValue()
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		return nil, fmt.Errorf("decode %s: %v: %w", key, err, apperrors.ErrValidation)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode %s: trailing data: %w", key, apperrors.ErrValidation)
	}
	if err := validateValue(value); err != nil {
		return nil, fmt.Errorf("validate %s: %v: %w", key, err, apperrors.ErrValidation)
	}
	return value, nil
}

// Normalize decodes raw and re-encodes it, so only the canonical shape is stored.
func Normalize(key Key, raw []byte) ([]byte, error) {
	value, err := Decode(key, raw)
	if err != nil {
		return nil, err
	}
	return json.Marshal(value)
}

// Encode validates a typed value and marshals it for storage.
func Encode(key Key, value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}
	return Normalize(key, raw)
}

func validateValue(value any) error {
	switch v := value.(type) {
	case *AboutCredentials:
		seen := make(map[int]bool, len(*v))
		for _, c := range *v {
			if err := validate.Struct(c); err != nil {
				return err
			}
			if seen[c.ID] {
				return fmt.Errorf("duplicate credential id %d", c.ID)
			}
			seen[c.ID] = true
		}
		return nil
	case *SectionsVisibility, *SectionsOrder:
		return nil
	default:
		return validate.Struct(v)
	}
}

// Lookup finds key among configs and decodes it as T. found is false when
// the key has never been saved.
func Lookup[T any](configs []model.SiteConfig, key Key) (value T, found bool, err error) {
	for _, cfg := range configs {
		if cfg.Key != string(key) {
			continue
		}
		if err := json.Unmarshal(cfg.Value, &value); err != nil {
			return value, true, fmt.Errorf("decode %s: %v: %w", key, err, apperrors.ErrValidation)
		}
		return value, true, nil
	}
	return value, false, nil
}
