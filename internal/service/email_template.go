package service

import (
	"fmt"
	"strings"
	"time"

	"selling-sisters-api/internal/model"
	"selling-sisters-api/pkg/utils"
)

// 邮件渲染是纯字符串拼接，不做 I/O，不会失败。
// 所有用户输入在插值前都过一遍 SanitizeText / SanitizeURL，
// 防止往店主邮箱里注入 HTML。

var typeLabels = map[string]string{
	model.ProductTypeBracelet:     "Bracelet",
	model.ProductTypeColoringPage: "Coloring Page",
	model.ProductTypePortrait:     "Portrait",
}

var typeEmojis = map[string]string{
	model.ProductTypeBracelet:     "📿",
	model.ProductTypeColoringPage: "🎨",
	model.ProductTypePortrait:     "🖼️",
}

func typeLabel(t string) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return "Product"
}

func typeEmoji(t string) string {
	if e, ok := typeEmojis[t]; ok {
		return e
	}
	return "📦"
}

// orderTimestamp 店主在德州，时间固定用中部时区展示
func orderTimestamp() string {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Format("January 2, 2006 at 3:04 PM")
}

// emailSubject 店主邮件标题: 类目 emoji + 客户名 + 类目
func emailSubject(contact model.ContactInfo, details model.OrderDetails) string {
	return fmt.Sprintf("%s %s — %s Order",
		typeEmoji(details.Type),
		utils.SanitizeText(contact.Name, 50),
		typeLabel(details.Type))
}

// ==================== 店主邮件 (HTML) ====================

// ownerEmailHTML 发给店主的订单详情邮件
func ownerEmailHTML(contact model.ContactInfo, details model.OrderDetails, orderID string) string {
	safeName := utils.SanitizeText(contact.Name, 100)
	safeEmail := utils.SanitizeText(contact.Email, 254)
	safePhone := utils.SanitizeText(contact.Phone, 20)

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New ` + typeLabel(details.Type) + ` Order</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #374151; background-color: #f3f4f6;">
  <table role="presentation" style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 40px 20px;">
      <table role="presentation" style="max-width: 600px; margin: 0 auto; background: white; border-radius: 16px; overflow: hidden;">
        <tr>
          <td style="background: linear-gradient(135deg, #A78BFA 0%, #F472B6 100%); padding: 32px; text-align: center;">
            <h1 style="margin: 0; color: white; font-size: 24px; font-weight: 600;">` + typeEmoji(details.Type) + ` New ` + typeLabel(details.Type) + ` Order!</h1>
          </td>
        </tr>
        <tr>
          <td style="padding: 32px 32px 16px;">
            <h2 style="margin: 0 0 16px; color: #1f2937; font-size: 18px; border-bottom: 2px solid #A78BFA; padding-bottom: 8px;">👤 Customer Information</h2>
            <table style="width: 100%; border-collapse: collapse;">
`)
	b.WriteString(htmlRow("Name:", `<span style="font-weight: 500;">`+safeName+`</span>`))
	if safeEmail != "" {
		b.WriteString(htmlRow("Email:", `<a href="mailto:`+safeEmail+`" style="color: #A78BFA; text-decoration: none;">`+safeEmail+`</a>`))
	}
	if safePhone != "" {
		b.WriteString(htmlRow("Phone:", `<a href="tel:`+safePhone+`" style="color: #A78BFA; text-decoration: none;">`+utils.FormatPhone(safePhone)+`</a>`))
	}
	b.WriteString(`            </table>
          </td>
        </tr>
        <tr>
          <td style="padding: 16px 32px 32px;">
            <h2 style="margin: 0 0 16px; color: #1f2937; font-size: 18px; border-bottom: 2px solid #F472B6; padding-bottom: 8px;">📋 Order Details</h2>
            <table style="width: 100%; border-collapse: collapse;">
` + orderDetailRowsHTML(details) + `            </table>
          </td>
        </tr>
        <tr>
          <td style="background: #f9fafb; padding: 24px 32px; text-align: center; border-top: 1px solid #e5e7eb;">
            <p style="margin: 0 0 8px; color: #6b7280; font-size: 14px;"><strong>Order ID:</strong> ` + orderID + `</p>
            <p style="margin: 0; color: #9ca3af; font-size: 12px;">Received on ` + orderTimestamp() + `</p>
          </td>
        </tr>
      </table>
      <p style="text-align: center; color: #9ca3af; font-size: 12px; margin-top: 24px;">This order was submitted through the Selling Sisters website.</p>
    </td></tr>
  </table>
</body>
</html>`)
	return b.String()
}

func htmlRow(label, value string) string {
	return `              <tr>
                <td style="padding: 8px 0; color: #6b7280; width: 120px; vertical-align: top;">` + label + `</td>
                <td style="padding: 8px 0; color: #1f2937;">` + value + `</td>
              </tr>
`
}

// orderDetailRowsHTML 按类目生成明细行
func orderDetailRowsHTML(details model.OrderDetails) string {
	safeTitle := utils.SanitizeText(details.ProductTitle, 200)

	var b strings.Builder
	b.WriteString(htmlRow("Product:", `<span style="font-weight: 500;">`+safeTitle+`</span>`))

	switch details.Type {
	case model.ProductTypeBracelet:
		style := strings.ReplaceAll(utils.SanitizeText(details.Style, 50), "_", " ")
		b.WriteString(htmlRow("Style:", `<span style="text-transform: capitalize;">`+style+`</span>`))

		var swatches strings.Builder
		for _, color := range details.Colors {
			swatches.WriteString(`<span style="display: inline-block; padding: 4px 12px; margin: 2px; background: #f3f4f6; border-radius: 16px; font-size: 14px;">` +
				utils.SanitizeText(color, 50) + `</span>`)
		}
		b.WriteString(htmlRow("Colors:", swatches.String()))

		if notes := utils.SanitizeText(details.Notes, 500); notes != "" {
			b.WriteString(htmlRow("Special Notes:", quoteBlock(notes)))
		}

	case model.ProductTypeColoringPage:
		b.WriteString(htmlRow("Book:", utils.SanitizeText(details.BookName, 200)))
		b.WriteString(htmlRow("Page:", utils.SanitizeText(details.PageName, 200)))
		b.WriteString(htmlRow("Coloring Instructions:", quoteBlock(utils.SanitizeText(details.ColoringInstructions, 1000))))

	case model.ProductTypePortrait:
		if style := utils.SanitizeText(details.Style, 100); style != "" {
			b.WriteString(htmlRow("Style:", style))
		}
		if size := utils.SanitizeText(details.Size, 50); size != "" {
			b.WriteString(htmlRow("Size:", size))
		}
		b.WriteString(htmlRow("Description:", quoteBlock(utils.SanitizeText(details.SubjectDescription, 1000))))

		if imgURL := utils.SanitizeURL(details.ReferenceImageURL); imgURL != "" {
			b.WriteString(htmlRow("Reference Photo:",
				`<a href="`+imgURL+`" style="color: #A78BFA; text-decoration: none;">View Full Image</a><br/>`+
					`<img src="`+imgURL+`" alt="Reference photo" style="max-width: 200px; max-height: 200px; border-radius: 8px; margin-top: 8px; border: 1px solid #e5e7eb;" />`))
		}
	}

	return b.String()
}

func quoteBlock(text string) string {
	return `<span style="font-style: italic; background: #f9fafb; padding: 12px; border-radius: 8px; display: inline-block;">&quot;` + text + `&quot;</span>`
}

// ==================== 店主邮件 (纯文本) ====================

func ownerEmailText(contact model.ContactInfo, details model.OrderDetails, orderID string) string {
	var lines []string
	lines = append(lines,
		fmt.Sprintf("New %s Order from Selling Sisters!", typeLabel(details.Type)),
		strings.Repeat("=", 50),
		"",
		"CUSTOMER INFORMATION",
		"--------------------",
		"Name: "+contact.Name,
	)
	if contact.Email != "" {
		lines = append(lines, "Email: "+contact.Email)
	}
	if contact.Phone != "" {
		lines = append(lines, "Phone: "+utils.FormatPhone(contact.Phone))
	}

	lines = append(lines, "", "ORDER DETAILS", "-------------", "Product: "+details.ProductTitle)

	switch details.Type {
	case model.ProductTypeBracelet:
		lines = append(lines,
			"Style: "+strings.ReplaceAll(details.Style, "_", " "),
			"Colors: "+strings.Join(details.Colors, ", "))
		if details.Notes != "" {
			lines = append(lines, `Special Notes: "`+details.Notes+`"`)
		}
	case model.ProductTypeColoringPage:
		lines = append(lines,
			"Book: "+details.BookName,
			"Page: "+details.PageName,
			`Coloring Instructions: "`+details.ColoringInstructions+`"`)
	case model.ProductTypePortrait:
		if details.Style != "" {
			lines = append(lines, "Style: "+details.Style)
		}
		if details.Size != "" {
			lines = append(lines, "Size: "+details.Size)
		}
		lines = append(lines, `Description: "`+details.SubjectDescription+`"`)
		if details.ReferenceImageURL != "" {
			lines = append(lines, "Reference Photo: "+details.ReferenceImageURL)
		}
	}

	lines = append(lines, "",
		strings.Repeat("-", 50),
		"Order ID: "+orderID,
		"Received: "+orderTimestamp(),
		"",
		"This order was submitted through the Selling Sisters website.")

	return strings.Join(lines, "\n")
}

// ==================== 客户确认邮件 ====================

// confirmationSubject 客户确认邮件标题，只用名字的第一段
func confirmationSubject(contact model.ContactInfo) string {
	first := utils.SanitizeText(firstName(contact.Name), 30)
	return fmt.Sprintf("Thanks for your order, %s! 🎨", first)
}

func firstName(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return name
	}
	return parts[0]
}

func customerConfirmationHTML(contact model.ContactInfo, details model.OrderDetails, orderID string) string {
	first := utils.SanitizeText(firstName(contact.Name), 50)
	safeTitle := utils.SanitizeText(details.ProductTitle, 200)

	return `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #374151; background-color: #f3f4f6;">
  <table role="presentation" style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 40px 20px;">
      <table role="presentation" style="max-width: 500px; margin: 0 auto; background: white; border-radius: 16px; overflow: hidden;">
        <tr>
          <td style="background: linear-gradient(135deg, #A78BFA 0%, #F472B6 100%); padding: 32px; text-align: center;">
            <h1 style="margin: 0; color: white; font-size: 24px;">Thanks for your order! 🎨</h1>
          </td>
        </tr>
        <tr>
          <td style="padding: 32px; text-align: center;">
            <p style="font-size: 18px; margin: 0 0 16px;">Hi ` + first + `!</p>
            <p style="margin: 0 0 24px; color: #6b7280;">We got your order for <strong>` + safeTitle + `</strong> and we're so excited to make it for you!</p>
            <p style="margin: 0 0 24px; color: #6b7280;">We'll reach out soon to confirm the details.</p>
            <p style="margin: 0; padding: 16px; background: #f9fafb; border-radius: 8px; font-size: 14px;"><strong>Order ID:</strong> ` + orderID + `</p>
          </td>
        </tr>
        <tr>
          <td style="padding: 24px 32px; text-align: center; border-top: 1px solid #e5e7eb;">
            <p style="margin: 0; color: #9ca3af; font-size: 14px;">💜 Dylan &amp; Logan<br/>Selling Sisters</p>
          </td>
        </tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`
}

func customerConfirmationText(contact model.ContactInfo, details model.OrderDetails, orderID string) string {
	return strings.Join([]string{
		"Thanks for your order! 🎨",
		"",
		"Hi " + firstName(contact.Name) + "!",
		"",
		"We got your order for " + details.ProductTitle + " and we're so excited to make it for you!",
		"",
		"We'll reach out soon to confirm the details.",
		"",
		"Order ID: " + orderID,
		"",
		"💜 Dylan & Logan",
		"Selling Sisters",
	}, "\n")
}
