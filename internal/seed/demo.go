package seed

import "github.com/idilsaglam/checklists/internal/model"

// Demo returns the checklists shown when no seed file is given.
func Demo() []model.Checklist {
	return []model.Checklist{
		{
			Name: "Todo list",
			Icon: model.IconFace,
			Items: []model.Item{
				{Text: "Buy milk"},
			},
		},
		{
			Name: "Job hunt",
			Icon: model.IconHouse,
			Items: []model.Item{
				{Text: "Write application"},
				{Text: "Send application", Checked: true},
				{Text: "Get the job"},
				{Text: "Work hard", Checked: true},
				{Text: "Get salary"},
				{Text: "Buy a house", Checked: true},
			},
		},
		{
			Name: "House cleaning",
			Icon: model.IconCleaning,
			Items: []model.Item{
				{Text: "Clean the kitchen"},
				{Text: "Clean the bathroom", Checked: true},
				{Text: "Clean the living room"},
				{Text: "Clean the bedroom", Checked: true},
			},
		},
		{
			Name: "Study plan",
			Icon: model.IconSchool,
			Items: []model.Item{
				{Text: "Math homework", Checked: true},
				{Text: "Physics homework", Checked: true},
				{Text: "Chemistry homework", Checked: true},
				{Text: "Biology homework", Checked: true},
			},
		},
		{
			Name: "Dinner plan",
			Icon: model.IconDining,
			Items: []model.Item{
				{Text: "Cook dinner", Checked: true},
				{Text: "Eat dinner", Checked: true},
				{Text: "Wash the dishes", Checked: true},
				{Text: "Go for a walk", Checked: true},
				{Text: "Watch TV", Checked: true},
			},
		},
	}
}
