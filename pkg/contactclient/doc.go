// Package contactclient drives a contact form against the relay endpoint.
//
// A Controller holds the four form fields plus a loading flag and a
// status of idle, success or error. Presentation code renders State and
// calls UpdateField and Submit:
//
//	ctrl := contactclient.New("https://example.com/api/contact")
//	ctrl.Subscribe(func(s contactclient.State) { render(s) })
//	_ = ctrl.UpdateField(contactclient.FieldName, "Ada")
//	...
//	if err := ctrl.Submit(ctx); err != nil {
//	    // ctrl.State().Notice() holds the text to show
//	}
//
// Fields survive a failed attempt so the user can retry. A successful
// attempt clears them and disables further submits until Reset.
package contactclient
