// Package extsvc validates JSON payloads that update the configuration of an external
// service integration (object storage, outbound mail, SMS, push notification).
//
// # Overview
//
// Every Service has a fixed whitelist of parameter names held by a Catalog. A payload is
// accepted only if each of its top-level keys is on the whitelist; values are not
// inspected. Pipeline: blank check → service lookup → decode → set difference → verdict.
//
// # Key concepts
//
//   - Closed service set: S3, SMTP, SMS and NOTIFICATION. Unknown names are rejected
//     before the payload is decoded.
//   - Whole-document verdict: a payload with any unsupported key is rejected, and the
//     error lists every unsupported key in sorted order.
//   - Client errors: every rejection is a ClientError; use KindOf, errors.Is and errors.As
//     to inspect it.
//
// The whitelists are the json tags of S3Params, SMTPParams, SMSParams and
// NotificationParams. Catalog.Schema publishes the same information as JSON Schema.
//
// # Example
//
//	v := extsvc.NewValidator()
//	err := v.ValidateForUpdate(`{"s3_bucket_name":"docs","region":"eu"}`, "S3")
//	if extsvc.KindOf(err) == extsvc.KindUnsupportedParameter {
//	    fmt.Println(extsvc.UnsupportedParameters(err)) // [region]
//	}
package extsvc
