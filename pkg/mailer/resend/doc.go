// Package resend implements mailer.Sender on top of the Resend API.
//
//	sender := resend.New(resend.Config{APIKey: os.Getenv("RESEND_API_KEY")})
package resend
