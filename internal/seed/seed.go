// Package seed fills an empty database with default site content.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	apperrors "psisite/internal/errors"
	"psisite/internal/model"
	"psisite/internal/repository"
	"psisite/internal/service"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Content is the seed file layout.
type Content struct {
	Config         map[string]interface{} `yaml:"config"`
	Faq            []FaqItem              `yaml:"faq"`
	Services       []Service              `yaml:"services"`
	ExpertiseCards []ExpertiseCard        `yaml:"expertise_cards"`
}

type FaqItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Service struct {
	Title        string  `yaml:"title"`
	Description  string  `yaml:"description"`
	Icon         string  `yaml:"icon"`
	Gradient     string  `yaml:"gradient"`
	Price        *string `yaml:"price"`
	Duration     *string `yaml:"duration"`
	ShowPrice    bool    `yaml:"showPrice"`
	ShowDuration bool    `yaml:"showDuration"`
}

type ExpertiseCard struct {
	Title           string `yaml:"title"`
	Description     string `yaml:"description"`
	Icon            string `yaml:"icon"`
	BackgroundColor string `yaml:"backgroundColor"`
	IconColor       string `yaml:"iconColor"`
}

// Result counts what Apply created.
type Result struct {
	ConfigKeys     int `json:"configKeys"`
	Faq            int `json:"faq"`
	Services       int `json:"services"`
	ExpertiseCards int `json:"expertiseCards"`
}

// Load reads the seed file at path, or the embedded defaults when path is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Parse(defaultsYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes seed YAML.
func Parse(data []byte) (*Content, error) {
	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &content, nil
}

// Seeder writes seed content through the regular services.
type Seeder struct {
	configs service.SiteConfigService
	content service.Content
	logger  *zap.Logger
}

// NewSeeder creates a seeder.
func NewSeeder(configs service.SiteConfigService, content service.Content, logger *zap.Logger) *Seeder {
	return &Seeder{
		configs: configs,
		content: content,
		logger:  logger,
	}
}

// Apply is idempotent: config keys that already exist are left alone and a
// content list is only seeded while it is empty.
func (s *Seeder) Apply(ctx context.Context, content *Content) (Result, error) {
	var result Result

	keys := make([]string, 0, len(content.Config))
	for key := range content.Config {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		_, err := s.configs.Get(ctx, key)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return result, fmt.Errorf("check config %s: %w", key, err)
		}
		raw, err := json.Marshal(content.Config[key])
		if err != nil {
			return result, fmt.Errorf("encode config %s: %w", key, err)
		}
		if _, err := s.configs.Set(ctx, key, raw); err != nil {
			return result, fmt.Errorf("seed config %s: %w", key, err)
		}
		result.ConfigKeys++
	}

	faq := make([]model.FaqItem, len(content.Faq))
	for i, item := range content.Faq {
		faq[i] = model.FaqItem{
			Entry:    entry(i),
			Question: item.Question,
			Answer:   item.Answer,
		}
	}
	n, err := seedList(ctx, s.content.Faq, faq)
	if err != nil {
		return result, fmt.Errorf("seed faq: %w", err)
	}
	result.Faq = n

	services := make([]model.Service, len(content.Services))
	for i, item := range content.Services {
		services[i] = model.Service{
			Entry:        entry(i),
			Title:        item.Title,
			Description:  item.Description,
			Icon:         item.Icon,
			Gradient:     item.Gradient,
			Price:        item.Price,
			Duration:     item.Duration,
			ShowPrice:    item.ShowPrice,
			ShowDuration: item.ShowDuration,
		}
	}
	if n, err = seedList(ctx, s.content.Services, services); err != nil {
		return result, fmt.Errorf("seed services: %w", err)
	}
	result.Services = n

	cards := make([]model.ExpertiseCard, len(content.ExpertiseCards))
	for i, item := range content.ExpertiseCards {
		cards[i] = model.ExpertiseCard{
			Entry:           entry(i),
			Title:           item.Title,
			Description:     item.Description,
			Icon:            orDefault(item.Icon, "Brain"),
			BackgroundColor: orDefault(item.BackgroundColor, "#ffffff"),
			IconColor:       orDefault(item.IconColor, "#8b5cf6"),
		}
	}
	if n, err = seedList(ctx, s.content.Expertise, cards); err != nil {
		return result, fmt.Errorf("seed expertise cards: %w", err)
	}
	result.ExpertiseCards = n

	s.logger.Info("seed applied",
		zap.Int("config_keys", result.ConfigKeys),
		zap.Int("faq", result.Faq),
		zap.Int("services", result.Services),
		zap.Int("expertise_cards", result.ExpertiseCards),
	)
	return result, nil
}

func seedList[T repository.Orderable](ctx context.Context, svc service.ContentService[T], items []T) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	existing, err := svc.List(ctx, false)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i := range items {
		if _, err := svc.Create(ctx, &items[i]); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

func entry(order int) model.Entry {
	return model.Entry{IsActive: true, Order: order}
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
