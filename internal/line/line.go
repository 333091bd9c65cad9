// Package line builds deep-link URLs into the LINE messaging app.
//
// The links are best-effort by design: opening one launches LINE with a
// pre-filled message, but nothing confirms the user actually sent it.
// There is no API call, no delivery receipt and no retry.
package line

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/zone2fun/py-asset/pkg/model"
	"github.com/zone2fun/py-asset/pkg/util"
)

// Builder constructs oaMessage deep links for a single official account.
type Builder struct {
	oaID string
}

func NewBuilder(oaID string) *Builder {
	return &Builder{oaID: oaID}
}

// PropertyInquiryURL returns a link that opens LINE with a buyer inquiry
// about the given listing. oaMessage sends straight to the official account
// when it is already added as a friend.
func (b *Builder) PropertyInquiryURL(p model.Property) string {
	msg := fmt.Sprintf("สนใจทรัพย์นี้ครับ:\n%s\nราคา: %s บาท\nรหัสทรัพย์: %s",
		p.Title, util.FormatPrice(p.Price), p.ID)
	return b.deepLink(msg)
}

// LeadHandoffURL returns a link pre-filled with a summary of a fresh
// submission so the admin can follow up over chat.
func (b *Builder) LeadHandoffURL(l model.Lead) string {
	return b.deepLink(LeadSummary(l))
}

// LeadSummary renders the fixed handoff template for a submission.
func LeadSummary(l model.Lead) string {
	loc := "Not provided"
	if l.Latitude != nil && l.Longitude != nil {
		loc = fmt.Sprintf("https://www.google.com/maps?q=%v,%v", *l.Latitude, *l.Longitude)
	}
	firstImage := "-"
	if len(l.Images) > 0 {
		firstImage = l.Images[0]
	}

	lines := []string{
		"เสนอทรัพย์ใหม่:",
		"ทรัพย์: " + l.Title,
		"ราคา: " + l.Price,
		"ชื่อผู้ติดต่อ: " + l.Name,
		"เบอร์โทร: " + l.Phone,
		"รายละเอียด: " + l.Description,
		fmt.Sprintf("จำนวนรูปภาพ: %d รูป", len(l.Images)),
		"รูปแรก: " + firstImage,
		"พิกัด: " + loc,
	}
	return strings.Join(lines, "\n")
}

func (b *Builder) deepLink(message string) string {
	return fmt.Sprintf("https://line.me/R/oaMessage/%s/?%s", b.oaID, encodeComponent(message))
}

// encodeComponent matches JavaScript's encodeURIComponent: spaces become
// %20, not '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
