package templates

import (
	"fmt"
	"strings"
	"time"

	"trackdesk-service/internal/domain/entity"
)

// CallbackNotification renders the sales-team alert for a new callback
// request. Returns subject and HTML body.
func CallbackNotification(req *entity.CallbackRequest, estimatedCallTime string) (string, string) {
	subject := fmt.Sprintf("New Callback Request - %s priority (%s)", req.Priority, req.SelectedService)

	message := req.Message
	if message == "" {
		message = "-"
	}

	body := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>New Callback Request</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #3b4cb8; color: white; padding: 20px; text-align: center;">
      <h2>&#128222; New Callback Request</h2>
    </div>
    <div style="background-color: #f9f9f9; padding: 20px;">
      %s
      %s
      %s
      %s
      %s
      %s
      %s
    </div>
  </div>
</body>
</html>`,
		field("Name", req.Name),
		field("Phone Number", req.PhoneNumber),
		field("Service", req.SelectedService),
		badge("Priority", req.Priority, priorityColor(req.Priority)),
		field("Message", message),
		field("Expected Response", estimatedCallTime),
		field("Submitted At", req.CreatedAt.Format(time.RFC1123)),
	)

	return subject, body
}

// ContactNotification renders the sales-team alert for a contact inquiry.
func ContactNotification(contact *entity.Contact) (string, string) {
	subject := fmt.Sprintf("New %s Inquiry - Contact Form", contact.SelectedPlan)

	var optional string
	if contact.Message != "" {
		optional = field("Message", contact.Message)
	}

	body := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>New Contact Inquiry</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #3b4cb8; color: white; padding: 20px; text-align: center;">
      <h2>&#128663; New Tracking Service Inquiry</h2>
    </div>
    <div style="background-color: #f9f9f9; padding: 20px;">
      %s
      %s
      %s
      %s
      %s
    </div>
  </div>
</body>
</html>`,
		field("Full Name", contact.FullName),
		field("Phone Number", contact.PhoneNumber),
		badge("Selected Plan", contact.SelectedPlan, "#4ade80"),
		optional,
		field("Submitted At", contact.CreatedAt.Format(time.RFC1123)),
	)

	return subject, body
}

// OrderConfirmation renders the sales-team confirmation for a new order.
func OrderConfirmation(order *entity.Order) (string, string) {
	subject := fmt.Sprintf("New %s Package Order - %s", order.PackageDetails.Name, order.ContractNumber)

	var features strings.Builder
	for _, f := range order.PackageDetails.Features {
		features.WriteString("<li>" + f + "</li>")
	}

	body := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>New Package Order</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #3b4cb8; color: white; padding: 20px; text-align: center;">
      <h2>&#128230; New Package Order</h2>
    </div>
    <div style="background-color: #f9f9f9; padding: 20px;">
      %s
      %s
      %s
      %s
      %s
      <div style="margin-bottom: 15px;">
        <div style="font-weight: bold; color: #3b4cb8;">Included Features:</div>
        <ul>%s</ul>
      </div>
    </div>
  </div>
</body>
</html>`,
		field("Contract Number", order.ContractNumber),
		field("Phone Number", order.PhoneNumber),
		badge("Package", order.PackageDetails.Name, "#4ade80"),
		field("Price", fmt.Sprintf("PKR %d", order.PackageDetails.Price)),
		field("Message", order.Message),
		features.String(),
	)

	return subject, body
}

func field(label, value string) string {
	return fmt.Sprintf(`<div style="margin-bottom: 15px;">
        <div style="font-weight: bold; color: #3b4cb8;">%s:</div>
        <div style="margin-top: 5px;">%s</div>
      </div>`, label, value)
}

func badge(label, value, color string) string {
	return fmt.Sprintf(`<div style="margin-bottom: 15px;">
        <div style="font-weight: bold; color: #3b4cb8;">%s:</div>
        <span style="display: inline-block; background-color: %s; color: white; padding: 5px 15px; border-radius: 20px; font-size: 14px; margin-top: 5px;">%s</span>
      </div>`, label, color, value)
}

func priorityColor(priority string) string {
	switch priority {
	case entity.PriorityHigh:
		return "#ef4444"
	case entity.PriorityMedium:
		return "#f59e0b"
	default:
		return "#4ade80"
	}
}
