package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	flashSuccessKey = "flash_success"
	flashErrorKey   = "flash_error"
)

// FlashSuccess queues a one-time success message for the next rendered page.
func FlashSuccess(c *fiber.Ctx, message string) {
	setFlash(c, flashSuccessKey, message)
}

// FlashError queues a one-time error message for the next rendered page.
func FlashError(c *fiber.Ctx, message string) {
	setFlash(c, flashErrorKey, message)
}

func setFlash(c *fiber.Ctx, key, message string) {
	sess, err := store.Get(c)
	if err != nil {
		return
	}
	sess.Set(key, message)
	_ = sess.Save()
}

// popFlash returns and clears the pending flash messages.
func popFlash(c *fiber.Ctx) (success, errMsg string) {
	sess, err := store.Get(c)
	if err != nil {
		return "", ""
	}
	success, _ = sess.Get(flashSuccessKey).(string)
	errMsg, _ = sess.Get(flashErrorKey).(string)
	if success != "" || errMsg != "" {
		sess.Delete(flashSuccessKey)
		sess.Delete(flashErrorKey)
		_ = sess.Save()
	}
	return success, errMsg
}
