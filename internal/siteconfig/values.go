package siteconfig

// GeneralInfo holds the practitioner identity and navigation labels.
type GeneralInfo struct {
	Name            string `json:"name,omitempty"`
	CRP             string `json:"crp,omitempty"`
	SiteName        string `json:"siteName,omitempty"`
	Description     string `json:"description,omitempty"`
	Location        string `json:"location,omitempty"`
	NavHome         string `json:"navHome,omitempty"`
	NavAbout        string `json:"navAbout,omitempty"`
	NavServices     string `json:"navServices,omitempty"`
	NavTestimonials string `json:"navTestimonials,omitempty"`
	NavFaq          string `json:"navFaq,omitempty"`
	NavContact      string `json:"navContact,omitempty"`
}

// ContactInfo holds the public contact channels.
type ContactInfo struct {
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

type HeroSection struct {
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	ButtonText1 string `json:"buttonText1,omitempty"`
	ButtonText2 string `json:"buttonText2,omitempty"`
}

type AboutSection struct {
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	Credentials string `json:"credentials,omitempty"`
}

type ServicesSection struct {
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
}

// BadgedSection is the header shape shared by the testimonials and FAQ blocks.
type BadgedSection struct {
	Badge    string `json:"badge,omitempty"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

type ContactSection struct {
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Schedule    string `json:"schedule,omitempty"`
}

type FooterSection struct {
	Description    string `json:"description,omitempty"`
	Certifications string `json:"certifications,omitempty"`
	Copyright      string `json:"copyright,omitempty"`
	CNPJ           string `json:"cnpj,omitempty"`
	ShowCNPJ       bool   `json:"showCnpj"`
}

type InspirationalSection struct {
	Quote  string `json:"quote,omitempty"`
	Author string `json:"author,omitempty"`
}

// SectionsVisibility maps a section key to whether it is rendered.
type SectionsVisibility map[string]bool

// SectionsOrder maps a section key to its sort value. Values may be fractional.
type SectionsOrder map[string]float64

// Colors is the site palette. Background accepts any CSS background value.
type Colors struct {
	Primary    string `json:"primary,omitempty" validate:"omitempty,hexcolor"`
	Secondary  string `json:"secondary,omitempty" validate:"omitempty,hexcolor"`
	Accent     string `json:"accent,omitempty" validate:"omitempty,hexcolor"`
	Background string `json:"background,omitempty"`
}

// MarketingPixels holds tracking ids and the search indexing switch.
type MarketingPixels struct {
	FacebookPixel1       string `json:"facebookPixel1,omitempty"`
	FacebookPixel2       string `json:"facebookPixel2,omitempty"`
	GooglePixel          string `json:"googlePixel,omitempty"`
	EnableGoogleIndexing *bool  `json:"enableGoogleIndexing,omitempty"`
}

// IndexingEnabled defaults to true when the flag was never saved.
func (m MarketingPixels) IndexingEnabled() bool {
	return m.EnableGoogleIndexing == nil || *m.EnableGoogleIndexing
}

type SeoMeta struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	MetaKeywords    string `json:"metaKeywords,omitempty"`
}

// HeroImage points at the uploaded hero photo.
type HeroImage struct {
	Path string `json:"path" validate:"required"`
}

// Credential is one card of the about section's credentials strip.
type Credential struct {
	ID       int    `json:"id" validate:"min=1"`
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle" validate:"required"`
	Gradient string `json:"gradient" validate:"required"`
	IsActive bool   `json:"isActive"`
	Order    int    `json:"order" validate:"min=0"`
}

// AboutCredentials is stored as a plain JSON array.
type AboutCredentials []Credential
