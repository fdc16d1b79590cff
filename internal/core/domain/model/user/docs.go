// Package user provides storefront accounts and the e-mail verified
// registration flow that creates them.
package user
