// Package contact relays portfolio contact form submissions to the site
// owner's inbox.
//
//	relay, err := contact.NewRelay(resend.New(resendCfg), contact.Config{
//	    FromEmail:      "onboarding@resend.dev",
//	    FromName:       "Portfolio",
//	    To:             []string{"owner@example.com"},
//	    DefaultSubject: "New Portfolio Message",
//	})
//	err = relay.Relay(ctx, contact.Submission{Name: "Ada", Email: "ada@example.com", Message: "Hi"})
//
// User-provided values are escaped before rendering, so markup in a message
// arrives as visible text.
package contact
