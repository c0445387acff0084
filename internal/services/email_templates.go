package services

const verificationEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif, "Apple Color Emoji", "Segoe UI Emoji", "Segoe UI Symbol"; line-height: 1.6; color: #1f2937; background-color: #f0f9ff; margin: 0; padding: 20px; }
.container { padding: 20px; max-width: 600px; margin: 20px auto; background-color: #ffffff; border: 1px solid #bae6fd; border-radius: 8px; }
.header { font-size: 24px; font-weight: bold; color: #0369a1; margin-bottom: 15px; }
.content { padding: 30px; text-align: center; }
.code { font-size: 36px; font-weight: bold; letter-spacing: 8px; color: #0369a1; background-color: #f1f5f9; padding: 15px 20px; border-radius: 5px; display: inline-block; margin: 20px 0; }
.footer { margin-top: 20px; font-size: 12px; color: #6b7280; text-align: center; }
p { margin-bottom: 1em; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>%s</h1>
    </div>
    <div class="content">
      <p>%s</p>
      <div class="code">%s</div>
    </div>
    <div class="footer">
      © %d Glassy Property Hunter. All rights reserved.
    </div>
  </div>
</body>
</html>`
