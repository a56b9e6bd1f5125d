package tracker

import (
	"fmt"

	"dsa_tracker/internal/domain/model"
)

func CompletionNotice(q model.Question) model.Notification {
	headline := "Question marked as pending"
	if q.Completed {
		headline = "Question marked as completed"
	}
	return model.Notification{Headline: headline, Detail: q.Title, Severity: model.SeverityDefault}
}

func RegistrationNotice(c model.Contest) model.Notification {
	headline := "Unregistered from contest"
	if c.Registered {
		headline = "Registered for contest"
	}
	return model.Notification{Headline: headline, Detail: c.Title, Severity: model.SeverityDefault}
}

func SheetCreatedNotice() model.Notification {
	return model.Notification{
		Headline: "Sheet Created",
		Detail:   "Your new DSA sheet has been created successfully",
		Severity: model.SeverityDefault,
	}
}

func TitleRequiredNotice() model.Notification {
	return model.Notification{
		Headline: "Title Required",
		Detail:   "Please enter a title for your sheet",
		Severity: model.SeverityDestructive,
	}
}

func SheetDuplicatedNotice(src model.CustomSheet) model.Notification {
	return model.Notification{
		Headline: "Sheet Duplicated",
		Detail:   fmt.Sprintf(`Created a copy of "%s"`, src.Title),
		Severity: model.SeverityDefault,
	}
}

func SheetDeletedNotice(s model.CustomSheet) model.Notification {
	return model.Notification{
		Headline: "Sheet Deleted",
		Detail:   fmt.Sprintf(`"%s" has been deleted`, s.Title),
		Severity: model.SeverityDefault,
	}
}
