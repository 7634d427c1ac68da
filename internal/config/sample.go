package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# heroboard configuration
version: "1.0"

api:
  # Root of the hero API. Lists are fetched from <base_url>/heroes and
  # profiles from <base_url>/heroes/<id>/profile.
  base_url: "https://hahow-recruit.herokuapp.com"
  timeout: 10s
  user_agent: "heroboard"

ui:
  # Path prefix the page routes live under
  route_prefix: "/heroes"
  # How long an error banner stays visible
  error_dismiss_delay: 5s
  # default, high-contrast or minimal
  theme: "default"
  no_emoji: false

output:
  # text, json, markdown or csv
  default_format: "text"
  # auto, always or never
  color_mode: "auto"
  verbose: false

logging:
  # console or json
  format: "console"
  # Log file for the terminal page. Commands log to stderr when empty.
  file: ""
`
}

// MinimalSampleConfig returns the smallest useful configuration file
func MinimalSampleConfig() string {
	return `version: "1.0"

api:
  base_url: "https://hahow-recruit.herokuapp.com"

output:
  default_format: "text"
`
}
