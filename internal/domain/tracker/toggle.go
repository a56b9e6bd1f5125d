package tracker

import "dsa_tracker/internal/domain/model"

// replaceByID copies items and applies fn to the first element whose id matches.
// The second result is the replaced element, or nil when nothing matched.
func replaceByID[T any](items []T, id string, idOf func(T) string, fn func(T) T) ([]T, *T) {
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		if idOf(out[i]) == id {
			out[i] = fn(out[i])
			updated := out[i]
			return out, &updated
		}
	}
	return out, nil
}

// ToggleCompletion flips the completed flag of the question with the given id.
// Unknown ids leave the collection unchanged and return a nil question.
func ToggleCompletion(questions []model.Question, id string) ([]model.Question, *model.Question) {
	return replaceByID(questions, id,
		func(q model.Question) string { return q.ID },
		func(q model.Question) model.Question {
			c := q.Clone()
			c.Completed = !c.Completed
			return c
		})
}

// ToggleRegistration flips the registered flag of the contest with the given id.
func ToggleRegistration(contests []model.Contest, id string) ([]model.Contest, *model.Contest) {
	return replaceByID(contests, id,
		func(c model.Contest) string { return c.ID },
		func(c model.Contest) model.Contest {
			c.Registered = !c.Registered
			return c
		})
}
