package controllers

import "time"

const (
	NewsletterHashTTL = 5 * time.Minute
)
