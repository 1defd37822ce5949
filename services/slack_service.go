package services

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// SlackService envoie les erreurs serveur critiques sur un webhook Slack.
// Sans URL configurée, le service est inerte.
type SlackService struct {
	webhookURL string
	client     *http.Client
}

// SlackMessage représente un message Slack
type SlackMessage struct {
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment représente une pièce jointe Slack
type Attachment struct {
	Color     string  `json:"color,omitempty"`
	Title     string  `json:"title,omitempty"`
	Text      string  `json:"text,omitempty"`
	Fields    []Field `json:"fields,omitempty"`
	Timestamp int64   `json:"ts,omitempty"`
	Footer    string  `json:"footer,omitempty"`
}

// Field représente un champ dans une pièce jointe Slack
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// NewSlackService crée une nouvelle instance de SlackService
func NewSlackService(webhookURL string) *SlackService {
	if webhookURL == "" {
		log.Println("⚠️  Slack webhook URL non configuré - notifications Slack désactivées")
	}

	return &SlackService{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// SendCriticalError notifie une erreur serveur (5xx). Les échecs d'envoi
// sont journalisés sans bloquer le traitement de la requête.
func (s *SlackService) SendCriticalError(method, path, statusCode, message string) {
	if s.webhookURL == "" {
		return // Service désactivé
	}

	slackMsg := SlackMessage{
		Attachments: []Attachment{
			{
				Color:     "danger",
				Title:     "🚨 Erreur serveur",
				Text:      message,
				Timestamp: time.Now().Unix(),
				Footer:    "Partage de Recettes - Backend",
				Fields: []Field{
					{Title: "Méthode", Value: method, Short: true},
					{Title: "Status Code", Value: statusCode, Short: true},
					{Title: "Chemin", Value: path, Short: false},
				},
			},
		},
	}

	jsonData, err := json.Marshal(slackMsg)
	if err != nil {
		log.Printf("❌ Erreur lors de la sérialisation du message Slack: %v", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, s.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Printf("❌ Erreur lors de la création de la requête Slack: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("❌ Erreur lors de l'envoi à Slack: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("❌ Slack a retourné un code d'erreur: %d", resp.StatusCode)
		return
	}

	log.Printf("✓ Notification Slack envoyée pour l'erreur: %s %s", method, path)
}

// Enabled indique si le service est actif (utile au démarrage)
func (s *SlackService) Enabled() bool {
	return s.webhookURL != ""
}
