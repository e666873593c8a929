package trip

import "strings"

const maxDocumentsLimit = 10

func isValidCity(city string) bool {
	return strings.TrimSpace(city) != ""
}

func isValidMaxDocuments(maxDocuments int) bool {
	return maxDocuments >= 1 && maxDocuments <= maxDocumentsLimit
}
