package engine_test

import "github.com/limbo/studyquest/pkg/datekey"

func previous(key string) string {
	return datekey.Previous(key)
}

func intPtr(v int) *int {
	return &v
}
