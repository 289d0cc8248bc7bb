package models

// ProfileUpdate is a typed partial edit of one profile variant. Nil fields
// leave the existing value untouched; set fields replace it wholesale.
type ProfileUpdate interface {
	// TargetRole names the variant the update applies to.
	TargetRole() Role
}

// JobSeekerUpdate is a partial edit of a JobSeekerProfile.
type JobSeekerUpdate struct {
	Title          *string   `mapstructure:"title"`
	Experience     *string   `mapstructure:"experience"`
	Skills         *[]string `mapstructure:"skills"`
	Education      *string   `mapstructure:"education"`
	Location       *string   `mapstructure:"location"`
	Salary         *string   `mapstructure:"salary"`
	Resume         *string   `mapstructure:"resume"`
	LinkedinURL    *string   `mapstructure:"linkedin_url"`
	GithubURL      *string   `mapstructure:"github_url"`
	PortfolioURL   *string   `mapstructure:"portfolio_url"`
	Bio            *string   `mapstructure:"bio"`
	Achievements   *[]string `mapstructure:"achievements"`
	Languages      *[]string `mapstructure:"languages"`
	Certifications *[]string `mapstructure:"certifications"`
	Availability   *string   `mapstructure:"availability"`
	WorkType       *string   `mapstructure:"work_type"`
}

func (JobSeekerUpdate) TargetRole() Role { return RoleJobSeeker }

// Apply merges the set fields into p.
func (u JobSeekerUpdate) Apply(p *JobSeekerProfile) {
	setString(&p.Title, u.Title)
	setString(&p.Experience, u.Experience)
	setStrings(&p.Skills, u.Skills)
	setString(&p.Education, u.Education)
	setString(&p.Location, u.Location)
	setString(&p.Salary, u.Salary)
	setString(&p.Resume, u.Resume)
	setString(&p.LinkedinURL, u.LinkedinURL)
	setString(&p.GithubURL, u.GithubURL)
	setString(&p.PortfolioURL, u.PortfolioURL)
	setString(&p.Bio, u.Bio)
	setStrings(&p.Achievements, u.Achievements)
	setStrings(&p.Languages, u.Languages)
	setStrings(&p.Certifications, u.Certifications)
	setString(&p.Availability, u.Availability)
	setString(&p.WorkType, u.WorkType)
}

// EmployerUpdate is a partial edit of an EmployerProfile.
type EmployerUpdate struct {
	CompanyName *string   `mapstructure:"company_name"`
	CompanySize *string   `mapstructure:"company_size"`
	Industry    *string   `mapstructure:"industry"`
	Website     *string   `mapstructure:"website"`
	Description *string   `mapstructure:"description"`
	Location    *string   `mapstructure:"location"`
	Founded     *string   `mapstructure:"founded"`
	Employees   *string   `mapstructure:"employees"`
	Culture     *[]string `mapstructure:"culture"`
	Benefits    *[]string `mapstructure:"benefits"`
}

func (EmployerUpdate) TargetRole() Role { return RoleEmployer }

// Apply merges the set fields into p.
func (u EmployerUpdate) Apply(p *EmployerProfile) {
	setString(&p.CompanyName, u.CompanyName)
	setString(&p.CompanySize, u.CompanySize)
	setString(&p.Industry, u.Industry)
	setString(&p.Website, u.Website)
	setString(&p.Description, u.Description)
	setString(&p.Location, u.Location)
	setString(&p.Founded, u.Founded)
	setString(&p.Employees, u.Employees)
	setStrings(&p.Culture, u.Culture)
	setStrings(&p.Benefits, u.Benefits)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setStrings(dst *[]string, src *[]string) {
	if src != nil {
		*dst = append([]string(nil), (*src)...)
	}
}
