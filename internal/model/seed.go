package model

import "time"

// Seed fixtures used when no prior data exists in storage. The store
// starts from these instead of an empty board.

// SeedMembers returns the built-in member roster.
func SeedMembers() []Member {
	return []Member{
		{ID: "m1", Name: "Alex Rivera", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Alex", Role: "Designer"},
		{ID: "m2", Name: "Jordan Smith", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Jordan", Role: "Manager"},
		{ID: "m3", Name: "Sam Taylor", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sam", Role: "Developer"},
	}
}

// SeedProjects returns the built-in default projects.
func SeedProjects() []Project {
	return []Project{
		{ID: "p1", Name: "Core Strategy", Color: "#10B981"},
		{ID: "p2", Name: "Operations", Color: "#6366F1"},
		{ID: "p3", Name: "Growth", Color: "#F43F5E"},
	}
}

// SeedTasks returns the built-in default tasks, dated relative to now so
// the fixture board always contains one overdue and one upcoming task.
func SeedTasks(now time.Time) []Task {
	return []Task{
		{
			ID:          "t1",
			ProjectID:   "p1",
			Title:       "Finalize Q4 Roadmap",
			Description: "Prepare the presentation for the stakeholders meeting.",
			Status:      StatusInProgress,
			Priority:    PriorityHigh,
			DueDate:     now.AddDate(0, 0, -1).Format(DateLayout),
			Tags:        []string{"strategy"},
			Subtasks:    []SubTask{{ID: "s1", Title: "Gather data", Completed: true}},
			AssigneeID:  "m2",
			Attachments: []string{"Roadmap_Draft.pdf"},
			CreatedAt:   now.Add(-1000 * time.Second),
		},
		{
			ID:          "t2",
			ProjectID:   "p1",
			Title:       "Brand Refresh Guidelines",
			Description: "Update the color palette for the new campaign.",
			Status:      StatusTodo,
			Priority:    PriorityMedium,
			DueDate:     now.AddDate(0, 0, 1).Format(DateLayout),
			Tags:        []string{"design"},
			Subtasks:    []SubTask{},
			AssigneeID:  "m1",
			Attachments: []string{},
			CreatedAt:   now.Add(-2000 * time.Second),
		},
	}
}
