package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"

	"visitor-http-service/config"
	"visitor-http-service/models"
)

// InterfaceWhatsAppService defines the WhatsApp notification service interface
type InterfaceWhatsAppService interface {
	Connect() error
	Disconnect()
	IsConnected() bool
	NotifyHostOfVisit(host *models.Host, guest *models.Guest, visit *models.Visit) error
}

// WhatsAppService is a thin wrapper around a whatsmeow client used to tell
// hosts that a visitor is waiting at the front desk. The client is owned by
// this service and passed around through the container, never as a package
// singleton, so it has an explicit connect/disconnect lifecycle.
type WhatsAppService struct {
	Config *config.Config

	mu     sync.Mutex
	client *whatsmeow.Client
}

// NewWhatsAppService creates a new WhatsApp notification service
func NewWhatsAppService(cfg *config.Config) InterfaceWhatsAppService {
	return &WhatsAppService{Config: cfg}
}

// Connect opens the device store and connects the client. The service stays
// a no-op when WHATSAPP_ENABLED is false or when the device has never been
// paired (pairing is done out of band with a QR scan).
func (s *WhatsAppService) Connect() error {
	if !s.Config.WhatsAppEnabled {
		config.Info("WhatsApp notifications disabled, skipping connect")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil && s.client.IsConnected() {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.Config.WhatsAppStorePath), 0755); err != nil {
		return fmt.Errorf("failed to create WhatsApp store directory: %w", err)
	}

	container, err := sqlstore.New("sqlite3", "file:"+s.Config.WhatsAppStorePath+"?_foreign_keys=on", waLog.Noop)
	if err != nil {
		return fmt.Errorf("failed to open WhatsApp device store: %w", err)
	}

	device, err := container.GetFirstDevice()
	if err != nil {
		return fmt.Errorf("failed to load WhatsApp device: %w", err)
	}

	client := whatsmeow.NewClient(device, waLog.Noop)
	if client.Store.ID == nil {
		config.Warning("WhatsApp device is not paired yet, notifications will not be sent")
		return nil
	}

	if err := client.Connect(); err != nil {
		return fmt.Errorf("failed to connect to WhatsApp: %w", err)
	}

	s.client = client
	config.Info("WhatsApp client connected")
	return nil
}

// Disconnect closes the client connection
func (s *WhatsAppService) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		s.client.Disconnect()
		s.client = nil
		config.Info("WhatsApp client disconnected")
	}
}

// IsConnected reports whether the client is connected
func (s *WhatsAppService) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client != nil && s.client.IsConnected()
}

// NotifyHostOfVisit sends the host a message about a newly checked-in guest.
// Failures here must never fail the check-in itself; callers log and move on.
func (s *WhatsAppService) NotifyHostOfVisit(host *models.Host, guest *models.Guest, visit *models.Visit) error {
	if !s.Config.WhatsAppEnabled {
		return nil
	}
	if host == nil || host.Phone == "" {
		return errors.New("host has no phone number")
	}

	s.mu.Lock()
	client := s.client
	s.mu.Unlock()

	if client == nil || !client.IsConnected() {
		return errors.New("WhatsApp client is not connected")
	}

	purpose := visit.CustomPurpose
	if purpose == "" && visit.Purpose != nil {
		purpose = visit.Purpose.Name
	}

	text := fmt.Sprintf(
		"Hello %s, you have a visitor at the front desk.\n\nName: %s\nCompany: %s\nPurpose: %s\nChecked in at: %s",
		host.Name, guest.Name, guest.Company, purpose,
		visit.CheckInTime.Format("15:04, 02 Jan 2006"),
	)

	jid := types.NewJID(normalizePhone(host.Phone), types.DefaultUserServer)
	_, err := client.SendMessage(context.Background(), jid, &waProto.Message{
		Conversation: proto.String(text),
	})
	return err
}

// normalizePhone strips formatting characters and converts a local
// "08xx" style number to international form without the plus sign.
func normalizePhone(phone string) string {
	cleaned := strings.NewReplacer("+", "", " ", "", "-", "", "(", "", ")", "").Replace(phone)
	if strings.HasPrefix(cleaned, "0") {
		cleaned = "62" + cleaned[1:]
	}
	return cleaned
}
