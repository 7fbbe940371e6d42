package site

// Content is everything the portfolio page shows apart from the papers.
type Content struct {
	Profile     Profile         `yaml:"profile"`
	Education   []Education     `yaml:"education"`
	Experiences []Experience    `yaml:"experiences"`
	SkillGroups []SkillGroup    `yaml:"skills"`
	Languages   []Language      `yaml:"languages"`
	Projects    []Project       `yaml:"projects"`
	Contacts    []ContactMethod `yaml:"contacts"`
}

type Profile struct {
	Name       string `yaml:"name"`
	Headline   string `yaml:"headline"`
	Occupation string `yaml:"occupation"`
	Location   string `yaml:"location"`
	About      string `yaml:"about"`
	BirthDate  string `yaml:"birth_date"` // YYYY-MM-DD
	Photo      string `yaml:"photo"`
	ResumeURL  string `yaml:"resume_url"`
}

type Education struct {
	Period      string `yaml:"period"`
	Title       string `yaml:"title"`
	Institution string `yaml:"institution"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
}

type Experience struct {
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	CompanyURL   string   `yaml:"company_url"`
	Period       string   `yaml:"period"`
	Location     string   `yaml:"location"`
	Type         string   `yaml:"type"` // internship, research or project
	Description  []string `yaml:"description"`
	Technologies []string `yaml:"technologies"`
}

type SkillGroup struct {
	Title  string  `yaml:"title"`
	Icon   string  `yaml:"icon"`
	Skills []Skill `yaml:"skills"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"` // 0-100
}

type Language struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
	Flag  string `yaml:"flag"`
}

type Project struct {
	ID           string     `yaml:"id"`
	Title        string     `yaml:"title"`
	Description  string     `yaml:"description"`
	Image        string     `yaml:"image"`
	Category     string     `yaml:"category"`
	Features     []string   `yaml:"features"`
	Technologies []string   `yaml:"technologies"`
	GithubURL    string     `yaml:"github_url"`
	SiteURL      string     `yaml:"site_url"`
	Reference    *Reference `yaml:"reference"`
}

type Reference struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

type ContactMethod struct {
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	URL         string `yaml:"url"`
	Display     string `yaml:"display"`
	Description string `yaml:"description"`
}

type Category struct {
	ID    string
	Label string
	Icon  string
}
