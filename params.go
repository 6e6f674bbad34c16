package extsvc

// Parameter definitions for each Service. The json tag of every field is a parameter
// name accepted in an update payload. Values are typed as any: only names are checked.

// S3Params configures the object storage integration.
type S3Params struct {
	BucketName any `json:"s3_bucket_name,omitempty" jsonschema:"description=Bucket that stores documents and images"`
	AccessKey  any `json:"s3_access_key,omitempty" jsonschema:"description=Access key id"`
	SecretKey  any `json:"s3_secret_key,omitempty" jsonschema:"description=Secret access key"`
}

// SMTPParams configures outbound mail.
type SMTPParams struct {
	Username  any `json:"username,omitempty" jsonschema:"description=SMTP account user"`
	Password  any `json:"password,omitempty" jsonschema:"description=SMTP account password"`
	Host      any `json:"host,omitempty" jsonschema:"description=SMTP server host"`
	Port      any `json:"port,omitempty" jsonschema:"description=SMTP server port"`
	UseTLS    any `json:"useTLS,omitempty" jsonschema:"description=Whether to use TLS"`
	FromEmail any `json:"fromEmail,omitempty" jsonschema:"description=Sender address"`
	FromName  any `json:"fromName,omitempty" jsonschema:"description=Sender display name"`
}

// SMSParams configures the SMS bridge.
type SMSParams struct {
	HostName     any `json:"host_name,omitempty" jsonschema:"description=Message gateway host"`
	PortNumber   any `json:"port_number,omitempty" jsonschema:"description=Message gateway port"`
	EndPoint     any `json:"end_point,omitempty" jsonschema:"description=Message gateway endpoint path"`
	TenantAppKey any `json:"tenant_app_key,omitempty" jsonschema:"description=Tenant application key"`
}

// NotificationParams configures push notifications.
type NotificationParams struct {
	ServerKey   any `json:"server_key,omitempty" jsonschema:"description=Push gateway server key"`
	GCMEndPoint any `json:"gcm_end_point,omitempty" jsonschema:"description=GCM send endpoint"`
	FCMEndPoint any `json:"fcm_end_point,omitempty" jsonschema:"description=FCM send endpoint"`
}

// paramDefinitions binds each Service to its parameter struct. Indexed by Service so a
// new constant without a definition leaves a nil slot that buildDefaultCatalog rejects.
var paramDefinitions = [numServices]any{
	S3:           &S3Params{},
	SMTP:         &SMTPParams{},
	SMS:          &SMSParams{},
	Notification: &NotificationParams{},
}
