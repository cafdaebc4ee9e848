// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-pass-unlock/internal/service"
)

// describeLoginError returns the text shown for a failed attempt. Only the
// failure class reaches the screen, never the underlying cause.
func describeLoginError(err error) string {
	if err == nil {
		return ""
	}

	code := service.UserMessage(err)
	switch service.KindOf(err) {
	case service.FailureWeakDevice:
		return "Устройству не хватает ресурсов для проверки пароля [" + code + "]"
	case service.FailureIncorrectPassword:
		return "Неверный пароль [" + code + "]"
	default:
		return "Не удалось войти, повторите попытку позже [" + code + "]"
	}
}
