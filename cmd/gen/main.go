package main

import (
	"portal/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.PushSubscriptionModel{},
		model.ConversationModel{},
		model.ConversationMemberModel{},
		model.MessageModel{},
		model.AttachmentModel{},
		model.ReadReceiptModel{},
		model.ReactionModel{},
		model.NotificationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
