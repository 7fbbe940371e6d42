package site

const AllProjects = "all"

// ProjectCategories lists the filter buttons in display order.
var ProjectCategories = []Category{
	{ID: AllProjects, Label: "All Projects", Icon: "🚀"},
	{ID: "graphics", Label: "Graphics", Icon: "🎨"},
	{ID: "ai", Label: "AI & ML", Icon: "🤖"},
	{ID: "game", Label: "Games", Icon: "🎮"},
	{ID: "web", Label: "Web", Icon: "🌐"},
}

func IsProjectCategory(id string) bool {
	if id == AllProjects {
		return false
	}
	for _, category := range ProjectCategories {
		if category.ID == id {
			return true
		}
	}
	return false
}

// FilterProjects keeps projects of the given category; "all" or "" keeps everything.
func FilterProjects(projects []Project, category string) []Project {
	if category == "" || category == AllProjects {
		return projects
	}

	filtered := make([]Project, 0, len(projects))
	for _, project := range projects {
		if project.Category == category {
			filtered = append(filtered, project)
		}
	}
	return filtered
}

func CategoryIcon(id string) string {
	for _, category := range ProjectCategories {
		if category.ID == id {
			return category.Icon
		}
	}
	return "💡"
}
