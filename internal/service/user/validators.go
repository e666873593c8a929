package user

import "strings"

const minPasswordLength = 8

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 8 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidRole(role string) bool {
	switch role {
	case "sender", "traveler", "both":
		return true
	default:
		return false
	}
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}
