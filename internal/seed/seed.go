// Package seed holds the fixed starting dataset the tracker boots with.
package seed

import (
	"time"

	"dsa_tracker/internal/domain/model"
)

const day = 24 * time.Hour

type Data struct {
	Questions []model.Question
	Sheets    []model.CustomSheet
	Contests  []model.Contest
	Progress  model.UserProgress
}

// Load builds the dataset with every relative timestamp anchored at now.
func Load(now time.Time) Data {
	return Data{
		Questions: Questions(),
		Sheets:    Sheets(now),
		Contests:  Contests(now),
		Progress:  Progress(now),
	}
}

func Questions() []model.Question {
	return []model.Question{
		{ID: "1", Title: "Two Sum", Link: "https://leetcode.com/problems/two-sum/",
			Platform: model.PlatformLeetCode, Difficulty: model.DifficultyEasy,
			Tags: []string{"array", "hash-table"}, Completed: true},
		{ID: "2", Title: "Valid Parentheses", Link: "https://leetcode.com/problems/valid-parentheses/",
			Platform: model.PlatformLeetCode, Difficulty: model.DifficultyEasy,
			Tags: []string{"string", "stack"}},
		{ID: "3", Title: "Merge Two Sorted Lists", Link: "https://leetcode.com/problems/merge-two-sorted-lists/",
			Platform: model.PlatformLeetCode, Difficulty: model.DifficultyEasy,
			Tags: []string{"linked-list", "recursion"}, Completed: true},
		{ID: "4", Title: "Maximum Subarray", Link: "https://leetcode.com/problems/maximum-subarray/",
			Platform: model.PlatformLeetCode, Difficulty: model.DifficultyMedium,
			Tags: []string{"array", "divide-and-conquer", "dynamic-programming"}},
		{ID: "5", Title: "Coin Change", Link: "https://leetcode.com/problems/coin-change/",
			Platform: model.PlatformLeetCode, Difficulty: model.DifficultyMedium,
			Tags: []string{"dynamic-programming"}},
		{ID: "6", Title: "Word Break", Link: "https://leetcode.com/problems/word-break/",
			Platform: model.PlatformLeetCode, Difficulty: model.DifficultyMedium,
			Tags: []string{"dynamic-programming", "trie", "memoization"}, Completed: true},
		{ID: "7", Title: "Trapping Rain Water", Link: "https://leetcode.com/problems/trapping-rain-water/",
			Platform: model.PlatformLeetCode, Difficulty: model.DifficultyHard,
			Tags: []string{"array", "two-pointers", "dynamic-programming", "stack"}},
		{ID: "8", Title: "Median of Two Sorted Arrays", Link: "https://leetcode.com/problems/median-of-two-sorted-arrays/",
			Platform: model.PlatformLeetCode, Difficulty: model.DifficultyHard,
			Tags: []string{"array", "binary-search", "divide-and-conquer"}},
		{ID: "9", Title: "DFS of Graph", Link: "https://practice.geeksforgeeks.org/problems/depth-first-traversal-for-a-graph/1",
			Platform: model.PlatformGFG, Difficulty: model.DifficultyEasy,
			Tags: []string{"graph", "dfs"}, Completed: true},
		{ID: "10", Title: "Detect cycle in a directed graph", Link: "https://practice.geeksforgeeks.org/problems/detect-cycle-in-a-directed-graph/1",
			Platform: model.PlatformGFG, Difficulty: model.DifficultyMedium,
			Tags: []string{"graph", "dfs"}},
	}
}

func Sheets(now time.Time) []model.CustomSheet {
	return []model.CustomSheet{
		{
			ID:          "1",
			Title:       "Arrays & String Algorithms",
			Slug:        "arrays-and-string-algorithms",
			Description: "Essential array and string manipulation problems for interviews",
			Questions:   []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
			CreatedAt:   now.Add(-7 * day),
			UpdatedAt:   now.Add(-2 * day),
			Progress:    70,
		},
		{
			ID:          "2",
			Title:       "Graph Algorithms",
			Slug:        "graph-algorithms",
			Description: "Common graph traversal and pathfinding problems",
			Questions:   []string{"11", "12", "13", "14", "15"},
			CreatedAt:   now.Add(-14 * day),
			UpdatedAt:   now.Add(-5 * day),
			Progress:    40,
		},
		{
			ID:          "3",
			Title:       "Dynamic Programming",
			Slug:        "dynamic-programming",
			Description: "Classic DP problems for advanced interviews",
			Questions:   []string{"16", "17", "18", "19", "20", "21", "22"},
			CreatedAt:   now.Add(-30 * day),
			UpdatedAt:   now.Add(-10 * day),
			Progress:    15,
		},
	}
}

// Contests are scheduled on calendar days after now's date, at fixed local times.
func Contests(now time.Time) []model.Contest {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	at := func(days, hour, minute int) time.Time {
		return midnight.AddDate(0, 0, days).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}
	return []model.Contest{
		{ID: "1", Title: "Weekly Contest 349", Platform: model.PlatformLeetCode,
			StartTime: at(2, 10, 30), EndTime: at(2, 12, 30),
			Link: "https://leetcode.com/contest/", Registered: true},
		{ID: "2", Title: "Biweekly Contest 124", Platform: model.PlatformLeetCode,
			StartTime: at(5, 9, 0), EndTime: at(5, 11, 0),
			Link: "https://leetcode.com/contest/"},
		{ID: "3", Title: "CodeCraft-23 (Div. 1 + Div. 2)", Platform: model.PlatformCodeforces,
			StartTime: at(3, 19, 30), EndTime: at(3, 22, 30),
			Link: "https://codeforces.com/contests"},
		{ID: "4", Title: "Codeforces Round #889 (Div. 2)", Platform: model.PlatformCodeforces,
			StartTime: at(7, 19, 30), EndTime: at(7, 21, 30),
			Link: "https://codeforces.com/contests", Registered: true},
		{ID: "5", Title: "GFG Weekly Coding Contest", Platform: model.PlatformGFG,
			StartTime: at(4, 20, 0), EndTime: at(4, 22, 0),
			Link: "https://practice.geeksforgeeks.org/contest/interview-series"},
		{ID: "6", Title: "CodeChef Starters 80", Platform: model.PlatformCustom,
			StartTime: at(1, 21, 0), EndTime: at(1, 24, 0),
			Link: "https://www.codechef.com/contests", Registered: true},
	}
}

func Progress(now time.Time) model.UserProgress {
	return model.UserProgress{
		TotalSolved: 158,
		Easy:        72,
		Medium:      63,
		Hard:        23,
		ByPlatform: map[model.Platform]int{
			model.PlatformLeetCode:   89,
			model.PlatformGFG:        42,
			model.PlatformCodeforces: 19,
			model.PlatformCustom:     8,
		},
		StreakDays: 12,
		LastActive: now,
	}
}
