package email

import (
	"context"
	"fmt"
)

// SendVerificationCode delivers the ownership verification code.
func SendVerificationCode(ctx context.Context, to, code string, expireMinutes int) error {
	subject := "Your Findr Health verification code"
	body := fmt.Sprintf(
		"Your verification code is %s.\r\n\r\n"+
			"Enter it in the onboarding wizard to confirm ownership of this practice. "+
			"The code expires in %d minutes.\r\n\r\n"+
			"If you did not request this, you can ignore this email.\r\n",
		code, expireMinutes,
	)

	return Send(ctx, to, subject, body)
}
