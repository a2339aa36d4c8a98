package models

type SiteInfo struct {
	Name         string   `mapstructure:"name" json:"name"`
	Tagline      string   `mapstructure:"tagline" json:"tagline"`
	Currency     string   `mapstructure:"currency" json:"currency"`
	Logo         string   `mapstructure:"logo" json:"logo"`
	Address      string   `mapstructure:"address" json:"address"`
	Phone        string   `mapstructure:"phone" json:"phone"`
	Email        string   `mapstructure:"email" json:"email"`
	OpeningHours string   `mapstructure:"opening_hours" json:"opening_hours"`
	WorkingDays  []string `mapstructure:"working_days" json:"working_days"`
	Socials      Socials  `mapstructure:"socials" json:"socials"`
}

type Socials struct {
	Facebook  string `mapstructure:"facebook" json:"facebook"`
	Instagram string `mapstructure:"instagram" json:"instagram"`
	Whatsapp  string `mapstructure:"whatsapp" json:"whatsapp"`
}

func DefaultSiteInfo() SiteInfo {
	return SiteInfo{
		Name:     "Chokokon",
		Tagline:  "Confeitaria artesanal",
		Currency: "BRL",
	}
}
