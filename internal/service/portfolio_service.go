package service

type PortfolioService struct{}

func NewPortfolioService() *PortfolioService {
	return &PortfolioService{}
}

// 必填字段用指针，只要求字段存在，允许空字符串
type PortfolioRequest struct {
	CreatorID  string   `json:"creatorId"`
	Name       *string  `json:"name" binding:"required"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
	Highlights []string `json:"highlights"`
}

type PortfolioSection struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

type Portfolio struct {
	Title      string             `json:"title"`
	Bio        string             `json:"bio"`
	Skills     []string           `json:"skills"`
	Highlights []string           `json:"highlights"`
	Sections   []PortfolioSection `json:"sections"`
}

type ResumeRequest struct {
	Name       *string                  `json:"name" binding:"required"`
	Email      *string                  `json:"email" binding:"required"`
	Summary    string                   `json:"summary"`
	Experience []map[string]interface{} `json:"experience"`
	Education  []map[string]interface{} `json:"education"`
	Skills     []string                 `json:"skills"`
}

type Resume struct {
	Name       string                   `json:"name"`
	Email      string                   `json:"email"`
	Summary    string                   `json:"summary"`
	Experience []map[string]interface{} `json:"experience"`
	Education  []map[string]interface{} `json:"education"`
	Skills     []string                 `json:"skills"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orStrings(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}

func orDocs(v, def []map[string]interface{}) []map[string]interface{} {
	if len(v) == 0 {
		return def
	}
	return v
}

// GeneratePortfolio 用请求字段覆盖默认内容，空字段保留默认值
func (s *PortfolioService) GeneratePortfolio(req PortfolioRequest) Portfolio {
	return Portfolio{
		Title: deref(req.Name) + " – Creator Portfolio",
		Bio:   orDefault(req.Bio, "Passionate educator creating impactful learning experiences."),
		Skills: orStrings(req.Skills, []string{
			"Curriculum Design", "Video Editing", "Python", "Data Viz",
		}),
		Highlights: orStrings(req.Highlights, []string{
			"10,000+ learners taught",
			"Top-rated course in category",
			"95% positive reviews",
		}),
		Sections: []PortfolioSection{
			{Name: "Featured Courses", Items: []string{"Mastering Python", "Data Visualization"}},
			{Name: "Certifications", Items: []string{"AWS Certified", "Google Data Analytics"}},
		},
	}
}

func (s *PortfolioService) GenerateResume(req ResumeRequest) Resume {
	return Resume{
		Name:    deref(req.Name),
		Email:   deref(req.Email),
		Summary: orDefault(req.Summary, "Educator focused on practical, project-based learning."),
		Experience: orDocs(req.Experience, []map[string]interface{}{
			{
				"role":    "Course Creator",
				"company": "Indie",
				"period":  "2021–Present",
				"details": []string{"Built 6 courses", "12k students"},
			},
		}),
		Education: orDocs(req.Education, []map[string]interface{}{
			{"degree": "B.Sc. Computer Science", "institution": "State University"},
		}),
		Skills: orStrings(req.Skills, []string{"Python", "Teaching", "Storyboarding", "Analytics"}),
	}
}
