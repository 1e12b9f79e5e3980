package service

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"psisite/internal/cache"
	"psisite/internal/model"
	"psisite/internal/siteconfig"
	"psisite/internal/textgradient"
)

// PageSection is one visible section with its header and active content.
type PageSection struct {
	siteconfig.Section
	Title       []textgradient.Segment      `json:"title,omitempty"`
	Items       interface{}                 `json:"items,omitempty"`
	Credentials siteconfig.AboutCredentials `json:"credentials,omitempty"`
}

// Page is everything the public site needs in a single response.
type Page struct {
	Sections []PageSection              `json:"sections"`
	Config   map[string]json.RawMessage `json:"config"`
}

// PageService composes the public page.
type PageService interface {
	Page(ctx context.Context) (*Page, error)
}

// Content groups the content services the page draws from.
type Content struct {
	Testimonials ContentService[model.Testimonial]
	Faq          ContentService[model.FaqItem]
	Services     ContentService[model.Service]
	Photos       ContentService[model.PhotoCarouselItem]
	Expertise    ContentService[model.ExpertiseCard]
}

type pageService struct {
	configs SiteConfigService
	content Content
	cache   publicCache
}

// NewPageService creates a new page service.
func NewPageService(configs SiteConfigService, content Content, cacheClient *cache.Client) PageService {
	return &pageService{
		configs: configs,
		content: content,
		cache:   publicCache{client: cacheClient},
	}
}

var sectionTitleKeys = map[string]siteconfig.Key{
	"hero":         siteconfig.KeyHeroSection,
	"about":        siteconfig.KeyAboutSection,
	"services":     siteconfig.KeyServicesSection,
	"testimonials": siteconfig.KeyTestimonialsSection,
	"faq":          siteconfig.KeyFaqSection,
	"contact":      siteconfig.KeyContactSection,
}

type titled struct {
	Title string `json:"title"`
}

// Page loads config and every content list concurrently and assembles the
// visible sections in display order.
func (s *pageService) Page(ctx context.Context) (*Page, error) {
	cacheKey, _ := s.cache.key(ctx, PageCacheKey)
	var cached Page
	if s.cache.get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	var (
		configs      []model.SiteConfig
		testimonials []model.Testimonial
		faq          []model.FaqItem
		services     []model.Service
		photos       []model.PhotoCarouselItem
		expertise    []model.ExpertiseCard
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { configs, err = s.configs.List(gctx); return })
	g.Go(func() (err error) { testimonials, err = s.content.Testimonials.List(gctx, true); return })
	g.Go(func() (err error) { faq, err = s.content.Faq.List(gctx, true); return })
	g.Go(func() (err error) { services, err = s.content.Services.List(gctx, true); return })
	g.Go(func() (err error) { photos, err = s.content.Photos.List(gctx, true); return })
	g.Go(func() (err error) { expertise, err = s.content.Expertise.List(gctx, true); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	layout, err := layoutFrom(configs)
	if err != nil {
		return nil, err
	}
	creds, _, err := siteconfig.Lookup[siteconfig.AboutCredentials](configs, siteconfig.KeyAboutCredentials)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Sections: make([]PageSection, 0, len(layout)),
		Config:   make(map[string]json.RawMessage, len(configs)),
	}
	for _, cfg := range configs {
		page.Config[cfg.Key] = json.RawMessage(cfg.Value)
	}

	for _, section := range siteconfig.Visible(layout) {
		ps := PageSection{Section: section}
		if key, ok := sectionTitleKeys[section.Key]; ok {
			header, _, err := siteconfig.Lookup[titled](configs, key)
			if err != nil {
				return nil, err
			}
			ps.Title = textgradient.Split(header.Title)
		}

		switch section.Key {
		case "about":
			ps.Items = expertise
			ps.Credentials = creds.Active()
		case "services":
			ps.Items = services
		case "testimonials":
			ps.Items = testimonials
		case "faq":
			ps.Items = faq
		case "photo-carousel":
			ps.Items = photos
		}
		page.Sections = append(page.Sections, ps)
	}

	s.cache.set(ctx, cacheKey, page)
	return page, nil
}
